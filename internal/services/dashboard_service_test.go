package services_test

import (
	"errors"
	"reflect"
	"testing"

	"foodwaste/internal/domain"
	"foodwaste/internal/filter"
	"foodwaste/internal/fixture"
	"foodwaste/internal/repos"
	"foodwaste/internal/services"
)

func dashboard(t *testing.T) *services.DashboardService {
	t.Helper()
	db := fixture.Open(t)
	return services.NewDashboardService(repos.NewStoreRepo(db), repos.NewProviderRepo(db),
		repos.NewReceiverRepo(db), repos.NewListingRepo(db), repos.NewClaimRepo(db))
}

func TestDashboard_Overview(t *testing.T) {
	ov, err := dashboard(t).Overview()
	if err != nil {
		t.Fatal(err)
	}
	if ov.Providers != 4 || ov.Receivers != 2 || ov.Listings != 5 || ov.Claims != 4 {
		t.Fatalf("unexpected totals: %+v", ov)
	}
	wantCity := []services.Bucket{{"Capital City", 1}, {"Shelbyville", 2}, {"Springfield", 2}}
	if !reflect.DeepEqual(ov.ByCity, wantCity) {
		t.Fatalf("by city: want %v, got %v", wantCity, ov.ByCity)
	}
	wantStatus := []services.Bucket{{"Pending", 2}, {"Completed", 2}}
	if !reflect.DeepEqual(ov.ByStatus, wantStatus) {
		t.Fatalf("by status: want %v, got %v", wantStatus, ov.ByStatus)
	}
}

func TestDashboard_FilterAndContacts(t *testing.T) {
	svc := dashboard(t)

	got, err := svc.FilterListings(filter.Predicate{City: "Springfield", MealType: "Dinner"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].FoodID != 13 {
		t.Fatalf("want listing 13, got %+v", got)
	}

	lc, err := svc.ListingContacts(filter.Predicate{ProviderName: "Green Grocer"})
	if err != nil {
		t.Fatal(err)
	}
	if len(lc) != 2 || lc[0].FoodID != 12 || lc[0].ProviderContact != "555-0103" {
		t.Fatalf("unexpected contacts: %+v", lc)
	}
}

func TestDashboard_FormChoicesAndTables(t *testing.T) {
	svc := dashboard(t)

	fc, err := svc.FormChoices()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(fc.ProviderIDs, []int64{1, 2, 3, 4}) || !reflect.DeepEqual(fc.ReceiverIDs, []int64{1, 2}) {
		t.Fatalf("unexpected choices: %+v", fc)
	}

	tbl, err := svc.Table("claims")
	if err != nil || tbl.Len() != 4 {
		t.Fatalf("claims dump: %v rows, err %v", tbl.Len(), err)
	}
	if _, err := svc.Table("users"); !errors.Is(err, domain.ErrUnknownTable) {
		t.Fatalf("want ErrUnknownTable, got %v", err)
	}
}
