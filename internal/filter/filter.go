// Package filter narrows the food listing table in memory. It never
// touches the store.
package filter

import (
	"sort"

	"foodwaste/internal/domain"
)

// All disables a predicate option. The empty string does too.
const All = "All"

type Predicate struct {
	City         string `query:"city" json:"city"`
	FoodType     string `query:"food_type" json:"food_type"`
	MealType     string `query:"meal_type" json:"meal_type"`
	ProviderName string `query:"provider" json:"provider"`
}

func active(v string) bool { return v != "" && v != All }

// IsAll reports whether p narrows nothing.
func (p Predicate) IsAll() bool {
	return !active(p.City) && !active(p.FoodType) && !active(p.MealType) && !active(p.ProviderName)
}

// Apply keeps the listings matching every active option. The provider
// name is resolved to the set of Provider_IDs carrying that exact name;
// an unknown name yields an empty set and so an empty result.
func Apply(listings []domain.FoodListing, providers []domain.Provider, p Predicate) []domain.FoodListing {
	if p.IsAll() {
		return listings
	}
	var ids map[int64]struct{}
	if active(p.ProviderName) {
		ids = ProviderIDs(providers, p.ProviderName)
	}
	out := make([]domain.FoodListing, 0, len(listings))
	for _, l := range listings {
		if active(p.City) && l.Location != p.City {
			continue
		}
		if active(p.FoodType) && l.FoodType != p.FoodType {
			continue
		}
		if active(p.MealType) && l.MealType != p.MealType {
			continue
		}
		if ids != nil {
			if l.ProviderID == nil {
				continue
			}
			if _, ok := ids[*l.ProviderID]; !ok {
				continue
			}
		}
		out = append(out, l)
	}
	return out
}

// ProviderIDs returns the ids of every provider named name.
func ProviderIDs(providers []domain.Provider, name string) map[int64]struct{} {
	ids := map[int64]struct{}{}
	for _, pr := range providers {
		if pr.Name == name {
			ids[pr.ProviderID] = struct{}{}
		}
	}
	return ids
}

// Options are the choices offered for each predicate, "All" first.
type Options struct {
	Cities    []string `json:"cities"`
	FoodTypes []string `json:"food_types"`
	MealTypes []string `json:"meal_types"`
	Providers []string `json:"providers"`
}

// BuildOptions collects the distinct values present in the data. Cities
// are the union of provider cities and listing locations.
func BuildOptions(providers []domain.Provider, listings []domain.FoodListing) Options {
	cities, foods, meals, names := set{}, set{}, set{}, set{}
	for _, p := range providers {
		cities.add(p.City)
		names.add(p.Name)
	}
	for _, l := range listings {
		cities.add(l.Location)
		foods.add(l.FoodType)
		meals.add(l.MealType)
	}
	return Options{
		Cities:    cities.withAll(),
		FoodTypes: foods.withAll(),
		MealTypes: meals.withAll(),
		Providers: names.withAll(),
	}
}

type set map[string]struct{}

func (s set) add(v string) {
	if v != "" {
		s[v] = struct{}{}
	}
}

func (s set) withAll() []string {
	out := make([]string, 0, len(s)+1)
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return append([]string{All}, out...)
}

// WithContacts attaches the provider name and contact to each listing
// (empty when the provider is unknown) and orders by expiry date. Equal
// dates keep their input order.
func WithContacts(listings []domain.FoodListing, providers []domain.Provider) []domain.ListingContact {
	byID := make(map[int64]domain.Provider, len(providers))
	for _, p := range providers {
		if _, dup := byID[p.ProviderID]; !dup {
			byID[p.ProviderID] = p
		}
	}
	out := make([]domain.ListingContact, 0, len(listings))
	for _, l := range listings {
		lc := domain.ListingContact{FoodListing: l}
		if l.ProviderID != nil {
			if p, ok := byID[*l.ProviderID]; ok {
				lc.ProviderName = p.Name
				lc.ProviderContact = p.Contact
			}
		}
		out = append(out, lc)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ExpiryDate < out[j].ExpiryDate })
	return out
}
