// Package catalogue is the fixed set of named report queries. Entries
// are descriptors, not free-form strings: each carries its statement,
// the parameters it binds and the columns it returns. User input only
// ever reaches a statement as a bound "?" argument.
package catalogue

import (
	"fmt"
	"strconv"
	"strings"

	"foodwaste/internal/domain"
)

type ID int

const (
	ProvidersReceiversPerCity ID = iota + 1
	ProviderTypeByQuantity
	ProvidersByCity
	ReceiversMostClaims
	QuantityAvailable
	CityMostListings
	CommonFoodTypes
	ClaimsPerFood
	ProviderSuccessfulClaims
	ClaimStatusPercentages
	AvgQtyPerReceiver
	MostClaimedMealType
	QuantityByProvider
	CitiesCompletedClaims
	ExpiredItems
	ExpiringSoon
	UnclaimedItems
	ProviderConversion
)

// Param is a caller-supplied value bound positionally into the statement.
type Param struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type Descriptor struct {
	ID      ID       `json:"id"`
	Name    string   `json:"name"`
	SQL     string   `json:"-"`
	Params  []Param  `json:"params,omitempty"`
	Columns []string `json:"columns"`
}

var listingCols = []string{"Food_ID", "Food_Name", "Quantity", "Expiry_Date", "Location"}

var entries = []Descriptor{
	{
		ID:   ProvidersReceiversPerCity,
		Name: "1 Providers & Receivers per City",
		SQL: `
WITH p AS (SELECT City, COUNT(*) AS providers FROM providers GROUP BY City),
     r AS (SELECT City, COUNT(*) AS receivers FROM receivers GROUP BY City)
SELECT City, Total_Providers, Total_Receivers FROM (
  SELECT p.City AS City,
         COALESCE(p.providers, 0) AS Total_Providers,
         COALESCE(r.receivers, 0) AS Total_Receivers
  FROM p LEFT JOIN r ON p.City = r.City
  UNION ALL
  SELECT r.City, 0, r.receivers FROM r
  WHERE r.City NOT IN (SELECT City FROM p WHERE City IS NOT NULL)
)
ORDER BY City`,
		Columns: []string{"City", "Total_Providers", "Total_Receivers"},
	},
	{
		ID:   ProviderTypeByQuantity,
		Name: "2 Provider type by total quantity",
		SQL: `
SELECT Provider_Type, SUM(Quantity) AS Total_Quantity
FROM food_listings
GROUP BY Provider_Type
ORDER BY Total_Quantity DESC, Provider_Type`,
		Columns: []string{"Provider_Type", "Total_Quantity"},
	},
	{
		ID:   ProvidersByCity,
		Name: "3 Providers & contacts (choose city below)",
		SQL: `
SELECT Name, Type, City, Contact
FROM providers
WHERE City = ?
ORDER BY Name`,
		Params:  []Param{{Name: "city", Label: "City"}},
		Columns: []string{"Name", "Type", "City", "Contact"},
	},
	{
		ID:   ReceiversMostClaims,
		Name: "4 Receivers with most claims",
		SQL: `
SELECT r.Name, COUNT(*) AS Total_Claims
FROM claims c JOIN receivers r ON c.Receiver_ID = r.Receiver_ID
GROUP BY r.Name
ORDER BY Total_Claims DESC, r.Name`,
		Columns: []string{"Name", "Total_Claims"},
	},
	{
		ID:   QuantityAvailable,
		Name: "5 Total quantity available (not expired)",
		SQL: `
SELECT SUM(Quantity) AS Total_Available
FROM food_listings
WHERE DATE(Expiry_Date) >= DATE('now', 'localtime')`,
		Columns: []string{"Total_Available"},
	},
	{
		ID:   CityMostListings,
		Name: "6 City with highest number of listings",
		SQL: `
SELECT Location AS City, COUNT(*) AS Listing_Count
FROM food_listings
GROUP BY Location
ORDER BY Listing_Count DESC, City`,
		Columns: []string{"City", "Listing_Count"},
	},
	{
		ID:   CommonFoodTypes,
		Name: "7 Most common food types",
		SQL: `
SELECT Food_Type, COUNT(*) AS Items
FROM food_listings
GROUP BY Food_Type
ORDER BY Items DESC, Food_Type`,
		Columns: []string{"Food_Type", "Items"},
	},
	{
		ID:   ClaimsPerFood,
		Name: "8 Claims per food item",
		SQL: `
SELECT f.Food_Name, COUNT(c.Claim_ID) AS Claims
FROM claims c JOIN food_listings f ON c.Food_ID = f.Food_ID
GROUP BY f.Food_Name
ORDER BY Claims DESC, f.Food_Name`,
		Columns: []string{"Food_Name", "Claims"},
	},
	{
		ID:   ProviderSuccessfulClaims,
		Name: "9 Provider with highest successful claims",
		SQL: `
SELECT p.Name, COUNT(*) AS Successful_Claims
FROM claims c
JOIN food_listings f ON c.Food_ID = f.Food_ID
JOIN providers p ON f.Provider_ID = p.Provider_ID
WHERE c.Status = 'Completed'
GROUP BY p.Name
ORDER BY Successful_Claims DESC, p.Name`,
		Columns: []string{"Name", "Successful_Claims"},
	},
	{
		ID:   ClaimStatusPercentages,
		Name: "10 Claim status percentages",
		SQL: `
SELECT Status,
       ROUND(COUNT(*) * 100.0 / NULLIF((SELECT COUNT(*) FROM claims), 0), 2) AS Percentage
FROM claims
GROUP BY Status
ORDER BY Percentage DESC, Status`,
		Columns: []string{"Status", "Percentage"},
	},
	{
		ID:   AvgQtyPerReceiver,
		Name: "11 Avg listed quantity of claimed items per receiver",
		SQL: `
SELECT r.Name, ROUND(AVG(f.Quantity), 2) AS Avg_Qty
FROM claims c
JOIN receivers r ON c.Receiver_ID = r.Receiver_ID
JOIN food_listings f ON c.Food_ID = f.Food_ID
GROUP BY r.Name
ORDER BY Avg_Qty DESC, r.Name`,
		Columns: []string{"Name", "Avg_Qty"},
	},
	{
		ID:   MostClaimedMealType,
		Name: "12 Most claimed meal type",
		SQL: `
SELECT f.Meal_Type, COUNT(*) AS Claims
FROM claims c JOIN food_listings f ON c.Food_ID = f.Food_ID
GROUP BY f.Meal_Type
ORDER BY Claims DESC, f.Meal_Type`,
		Columns: []string{"Meal_Type", "Claims"},
	},
	{
		ID:   QuantityByProvider,
		Name: "13 Total quantity donated by provider",
		SQL: `
SELECT p.Name, SUM(f.Quantity) AS Total_Donated
FROM food_listings f JOIN providers p ON f.Provider_ID = p.Provider_ID
GROUP BY p.Name
ORDER BY Total_Donated DESC, p.Name`,
		Columns: []string{"Name", "Total_Donated"},
	},
	{
		ID:   CitiesCompletedClaims,
		Name: "14 Cities with highest completed claims",
		SQL: `
SELECT f.Location AS City, COUNT(*) AS Completed_Claims
FROM claims c JOIN food_listings f ON c.Food_ID = f.Food_ID
WHERE c.Status = 'Completed'
GROUP BY f.Location
ORDER BY Completed_Claims DESC, City`,
		Columns: []string{"City", "Completed_Claims"},
	},
	{
		ID:   ExpiredItems,
		Name: "15 Expired items still listed",
		SQL: `
SELECT Food_ID, Food_Name, Quantity, Expiry_Date, Location
FROM food_listings
WHERE DATE(Expiry_Date) < DATE('now', 'localtime')
ORDER BY DATE(Expiry_Date), Food_ID`,
		Columns: listingCols,
	},
	{
		ID:   ExpiringSoon,
		Name: "16 Items expiring in next 2 days",
		SQL: `
SELECT Food_ID, Food_Name, Quantity, Expiry_Date, Location
FROM food_listings
WHERE DATE(Expiry_Date) BETWEEN DATE('now', 'localtime') AND DATE('now', 'localtime', '+2 day')
ORDER BY DATE(Expiry_Date), Food_ID`,
		Columns: listingCols,
	},
	{
		ID:   UnclaimedItems,
		Name: "17 Unclaimed items",
		SQL: `
SELECT f.Food_ID, f.Food_Name, f.Quantity, f.Expiry_Date, f.Location
FROM food_listings f LEFT JOIN claims c ON f.Food_ID = c.Food_ID
WHERE c.Claim_ID IS NULL
ORDER BY DATE(f.Expiry_Date), f.Food_ID`,
		Columns: listingCols,
	},
	{
		ID:   ProviderConversion,
		Name: "18 Provider conversion rate (Completed/All)",
		SQL: `
WITH stats AS (
  SELECT p.Name,
         COALESCE(SUM(CASE WHEN c.Status = 'Completed' THEN 1 ELSE 0 END), 0) AS Completed,
         COUNT(c.Claim_ID) AS Total
  FROM providers p
  LEFT JOIN food_listings f ON f.Provider_ID = p.Provider_ID
  LEFT JOIN claims c ON c.Food_ID = f.Food_ID
  GROUP BY p.Name
)
SELECT Name, Completed, Total,
       ROUND(Completed * 100.0 / NULLIF(Total, 0), 2) AS Conversion_Percentage
FROM stats
ORDER BY Conversion_Percentage DESC, Name`,
		Columns: []string{"Name", "Completed", "Total", "Conversion_Percentage"},
	},
}

var byName = func() map[string]*Descriptor {
	m := make(map[string]*Descriptor, len(entries))
	for i := range entries {
		m[entries[i].Name] = &entries[i]
	}
	return m
}()

// All returns the descriptors in catalogue order.
func All() []Descriptor {
	out := make([]Descriptor, len(entries))
	copy(out, entries)
	return out
}

func Get(id ID) (Descriptor, error) {
	if id < ProvidersReceiversPerCity || id > ProviderConversion {
		return Descriptor{}, fmt.Errorf("%w: %d", domain.ErrUnknownQuery, id)
	}
	return entries[id-1], nil
}

// Lookup resolves an exact query name.
func Lookup(name string) (Descriptor, error) {
	d, ok := byName[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", domain.ErrUnknownQuery, name)
	}
	return *d, nil
}

// Resolve accepts either a catalogue number or an exact name.
func Resolve(ref string) (Descriptor, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		return Get(ID(n))
	}
	return Lookup(ref)
}

// Bind turns named values into positional arguments, in declaration
// order. Missing and undeclared values are rejected.
func (d Descriptor) Bind(values map[string]string) ([]any, error) {
	args := make([]any, 0, len(d.Params))
	for _, p := range d.Params {
		v, ok := values[p.Name]
		if !ok {
			return nil, fmt.Errorf("%w: query %d needs %q", domain.ErrValidation, d.ID, p.Name)
		}
		args = append(args, v)
	}
	for k := range values {
		if !d.declares(k) {
			return nil, fmt.Errorf("%w: query %d takes no %q", domain.ErrValidation, d.ID, k)
		}
	}
	return args, nil
}

func (d Descriptor) declares(name string) bool {
	for _, p := range d.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}
