package services

import (
	"slices"
	"sort"

	"foodwaste/internal/domain"
	"foodwaste/internal/filter"
	"foodwaste/internal/repos"
	"foodwaste/internal/validate"
)

type DashboardService struct {
	Store     *repos.StoreRepo
	Providers *repos.ProviderRepo
	Receivers *repos.ReceiverRepo
	Listings  *repos.ListingRepo
	Claims    *repos.ClaimRepo
}

func NewDashboardService(store *repos.StoreRepo, providers *repos.ProviderRepo, receivers *repos.ReceiverRepo, listings *repos.ListingRepo, claims *repos.ClaimRepo) *DashboardService {
	return &DashboardService{Store: store, Providers: providers, Receivers: receivers, Listings: listings, Claims: claims}
}

// Bucket is one bar of a distribution.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Overview struct {
	Providers int `json:"providers"`
	Receivers int `json:"receivers"`
	Listings  int `json:"listings"`
	Claims    int `json:"claims"`

	ByCity     []Bucket `json:"by_city"`
	ByFoodType []Bucket `json:"by_food_type"`
	ByMealType []Bucket `json:"by_meal_type"`
	ByStatus   []Bucket `json:"by_status"`
}

func (s *DashboardService) Overview() (Overview, error) {
	counts, err := s.Store.Counts()
	if err != nil {
		return Overview{}, err
	}
	listings, err := s.Listings.ListAll()
	if err != nil {
		return Overview{}, err
	}
	statuses, err := s.Claims.StatusCounts()
	if err != nil {
		return Overview{}, err
	}

	city, food, meal := map[string]int{}, map[string]int{}, map[string]int{}
	for _, l := range listings {
		city[l.Location]++
		food[l.FoodType]++
		meal[l.MealType]++
	}
	var byStatus []Bucket
	for _, st := range domain.ClaimStatuses {
		if n := statuses[st]; n > 0 {
			byStatus = append(byStatus, Bucket{Label: string(st), Count: n})
		}
	}

	return Overview{
		Providers:  counts["providers"],
		Receivers:  counts["receivers"],
		Listings:   counts["food_listings"],
		Claims:     counts["claims"],
		ByCity:     buckets(city),
		ByFoodType: buckets(food),
		ByMealType: buckets(meal),
		ByStatus:   byStatus,
	}, nil
}

// buckets orders by label, as a group-by would.
func buckets(m map[string]int) []Bucket {
	out := make([]Bucket, 0, len(m))
	for k, v := range m {
		out = append(out, Bucket{Label: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

func (s *DashboardService) Options() (filter.Options, error) {
	listings, providers, err := s.current()
	if err != nil {
		return filter.Options{}, err
	}
	return filter.BuildOptions(providers, listings), nil
}

// FormChoices are the pick lists of the create-listing and claim forms.
type FormChoices struct {
	ProviderIDs []int64              `json:"provider_ids"`
	ReceiverIDs []int64              `json:"receiver_ids"`
	Statuses    []domain.ClaimStatus `json:"statuses"`
}

func (s *DashboardService) FormChoices() (FormChoices, error) {
	providers, err := s.Providers.ListAll()
	if err != nil {
		return FormChoices{}, err
	}
	receivers, err := s.Receivers.ListAll()
	if err != nil {
		return FormChoices{}, err
	}
	fc := FormChoices{ProviderIDs: []int64{}, ReceiverIDs: []int64{}, Statuses: domain.ClaimStatuses}
	for _, p := range providers {
		fc.ProviderIDs = append(fc.ProviderIDs, p.ProviderID)
	}
	for _, r := range receivers {
		fc.ReceiverIDs = append(fc.ReceiverIDs, r.ReceiverID)
	}
	slices.Sort(fc.ProviderIDs)
	slices.Sort(fc.ReceiverIDs)
	return fc, nil
}

func (s *DashboardService) current() ([]domain.FoodListing, []domain.Provider, error) {
	listings, err := s.Listings.ListAll()
	if err != nil {
		return nil, nil, err
	}
	providers, err := s.Providers.ListAll()
	if err != nil {
		return nil, nil, err
	}
	return listings, providers, nil
}

// FilterListings reads the current listings and applies p.
func (s *DashboardService) FilterListings(p filter.Predicate) ([]domain.FoodListing, error) {
	listings, providers, err := s.current()
	if err != nil {
		return nil, err
	}
	return filter.Apply(listings, providers, p), nil
}

// ListingContacts is FilterListings joined with provider contacts,
// ordered by expiry.
func (s *DashboardService) ListingContacts(p filter.Predicate) ([]domain.ListingContact, error) {
	listings, providers, err := s.current()
	if err != nil {
		return nil, err
	}
	return filter.WithContacts(filter.Apply(listings, providers, p), providers), nil
}

// Table dumps one of the four store tables.
func (s *DashboardService) Table(name string) (domain.Table, error) {
	if _, ok := validate.Table(name); !ok {
		return domain.Table{}, domain.ErrUnknownTable
	}
	return s.Store.Dump(name)
}

// Listing returns the rows carrying foodID; empty when absent.
func (s *DashboardService) Listing(foodID int64) ([]domain.FoodListing, error) {
	return s.Listings.ByID(foodID)
}
