// Package fixture builds a small, fully loaded in-memory store for tests.
package fixture

import (
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"foodwaste/internal/domain"
	"foodwaste/internal/ingest"
	"foodwaste/internal/repos"
)

// Today is the local calendar date, as the date-based queries see it.
func Today() string { return time.Now().Format(domain.DateLayout) }

// Sources returns the four CSVs:
//
//   - providers 1 and 3 share the name "Green Grocer"; provider 4 has no listings
//   - listings 10 and 14 expired (14 earlier but listed later), 11 and 13
//     far future, 12 expires today, 13 has no provider
//   - claims: 2 Completed, 2 Pending; claim 4 points at a missing listing
func Sources() ingest.Memory {
	return ingest.Memory{
		ingest.Providers: lines(
			"Provider_ID,Name,Type,City,Contact",
			"1,Green Grocer,Supermarket,Springfield,555-0101",
			"2,Daily Bread,Bakery,Shelbyville,555-0102",
			"3,Green Grocer,Restaurant,Capital City,555-0103",
			"4,Idle Kitchen,Restaurant,Springfield,555-0104",
		),
		ingest.Receivers: lines(
			"Receiver_ID,Name,City,Contact",
			"1,Food Bank,Springfield,555-0201",
			"2,Night Shelter,Ogdenville,555-0202",
		),
		ingest.Listings: lines(
			"Food_ID,Food_Name,Quantity,Expiry_Date,Provider_ID,Provider_Type,Location,Food_Type,Meal_Type",
			"10,Bread,20,2020-01-01,2,Bakery,Shelbyville,Vegetarian,Breakfast",
			"11,Soup,5,2099-01-01,1,Supermarket,Springfield,Vegan,Lunch",
			"12,Rice,8,"+Today()+",3,Restaurant,Capital City,Vegetarian,Dinner",
			"13,Fish,3,2099-06-01,,Restaurant,Springfield,Non-Vegetarian,Dinner",
			"14,Milk,4,2019-05-01,2,Bakery,Shelbyville,Vegetarian,Breakfast",
		),
		ingest.Claims: lines(
			"Claim_ID,Food_ID,Receiver_ID,Status,Timestamp",
			"1,10,1,Completed,2025-03-05 05:26:00",
			"2,11,2,Pending,2025-03-06 10:00:00",
			"3,11,1,Completed,2025-03-07 11:00:00",
			"4,99,1,Pending,2025-03-08 12:00:00",
		),
	}
}

func lines(ls ...string) string { return strings.Join(ls, "\n") + "\n" }

// Open returns an in-memory store loaded with Sources.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	b, err := ingest.Read(Sources())
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	if err := repos.NewStoreRepo(db).Replace(b); err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return db
}
