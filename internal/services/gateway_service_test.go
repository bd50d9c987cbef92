package services_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"foodwaste/internal/domain"
	"foodwaste/internal/fixture"
	"foodwaste/internal/repos"
	"foodwaste/internal/services"
)

func gateway(t *testing.T) (*services.GatewayService, *repos.ListingRepo, *repos.ClaimRepo) {
	t.Helper()
	db := fixture.Open(t)
	listings := repos.NewListingRepo(db)
	claims := repos.NewClaimRepo(db)
	return services.NewGatewayService(listings, claims), listings, claims
}

func quantityOf(t *testing.T, r *repos.ListingRepo, id int64) int {
	t.Helper()
	got, err := r.ByID(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("want one row for %d, got %d", id, len(got))
	}
	return got[0].Quantity
}

func TestGateway_UpdateQuantity(t *testing.T) {
	svc, listings, _ := gateway(t)

	n, err := svc.UpdateQuantity(11, 42)
	if err != nil || n != 1 {
		t.Fatalf("want 1 row, got %d (%v)", n, err)
	}
	if q := quantityOf(t, listings, 11); q != 42 {
		t.Fatalf("want qty=42, got %d", q)
	}

	// negative quantities never reach the store
	if _, err := svc.UpdateQuantity(11, -1); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
	if q := quantityOf(t, listings, 11); q != 42 {
		t.Fatalf("row changed after rejected update: %d", q)
	}

	// absent id is a no-op, not an error
	n, err = svc.UpdateQuantity(999, 1)
	if err != nil || n != 0 {
		t.Fatalf("want 0 rows, got %d (%v)", n, err)
	}
}

func TestGateway_DeleteListing(t *testing.T) {
	svc, listings, _ := gateway(t)

	n, err := svc.DeleteListing(13)
	if err != nil || n != 1 {
		t.Fatalf("want 1 row, got %d (%v)", n, err)
	}
	got, err := listings.ByID(13)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("listing 13 still present: %+v", got)
	}

	n, err = svc.DeleteListing(13)
	if err != nil || n != 0 {
		t.Fatalf("second delete: want 0 rows, got %d (%v)", n, err)
	}
}

func TestGateway_CreateListing(t *testing.T) {
	svc, listings, _ := gateway(t)

	pid := int64(4)
	l := domain.FoodListing{
		FoodID: 20, FoodName: "Pasta", Quantity: 6, ExpiryDate: "4/2/2099", ProviderID: &pid,
		ProviderType: "Restaurant", Location: "Springfield", FoodType: "Vegan", MealType: "Dinner",
	}
	if err := svc.CreateListing(l); err != nil {
		t.Fatal(err)
	}
	got, err := listings.ByID(20)
	if err != nil || len(got) != 1 {
		t.Fatalf("created listing not found: %v %+v", err, got)
	}
	if got[0].ExpiryDate != "2099-04-02" || got[0].ProviderID == nil || *got[0].ProviderID != 4 {
		t.Fatalf("stored listing differs: %+v", got[0])
	}

	if err := svc.CreateListing(l); !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("want ErrDuplicateKey, got %v", err)
	}

	bad := l
	bad.FoodID, bad.Quantity = 21, -3
	if err := svc.CreateListing(bad); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
	bad = l
	bad.FoodID, bad.ExpiryDate = 22, "soon"
	if err := svc.CreateListing(bad); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestGateway_CreateListingTakesNameAsGiven(t *testing.T) {
	svc, listings, _ := gateway(t)

	for id, name := range map[int64]string{30: "", 31: "  Soup  ", 32: strings.Repeat("x", 150)} {
		l := domain.FoodListing{FoodID: id, FoodName: name, Quantity: 1, ExpiryDate: "2099-01-01"}
		if err := svc.CreateListing(l); err != nil {
			t.Fatalf("Food_ID %d: %v", id, err)
		}
		got, err := listings.ByID(id)
		if err != nil || len(got) != 1 {
			t.Fatalf("Food_ID %d not stored: %v %+v", id, err, got)
		}
		if got[0].FoodName != name {
			t.Fatalf("Food_ID %d: want name %q, got %q", id, name, got[0].FoodName)
		}
	}
}

func TestGateway_CreateClaim(t *testing.T) {
	svc, _, claims := gateway(t)
	svc.Now = func() time.Time { return time.Date(2025, 4, 1, 8, 30, 0, 0, time.Local) }

	c, err := svc.CreateClaim(domain.NewClaim{FoodID: 12, ReceiverID: 2, Status: domain.StatusPending})
	if err != nil {
		t.Fatal(err)
	}
	if c.ClaimID != 5 {
		t.Fatalf("want Claim_ID 5, got %d", c.ClaimID)
	}
	if c.Timestamp != "2025-04-01 08:30:00" {
		t.Fatalf("want default timestamp from clock, got %q", c.Timestamp)
	}

	c, err = svc.CreateClaim(domain.NewClaim{FoodID: 12, ReceiverID: 1, Status: domain.StatusCompleted, Timestamp: "4/2/2025 9:15"})
	if err != nil {
		t.Fatal(err)
	}
	if c.ClaimID != 6 || c.Timestamp != "2025-04-02 09:15:00" {
		t.Fatalf("unexpected claim: %+v", c)
	}

	for _, in := range []domain.NewClaim{
		{FoodID: 12, ReceiverID: 1, Status: "Done"},
		{FoodID: 12, ReceiverID: 1, Status: domain.StatusPending, Timestamp: "yesterday"},
	} {
		if _, err := svc.CreateClaim(in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%+v: want ErrValidation, got %v", in, err)
		}
	}
	all, err := claims.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 6 {
		t.Fatalf("rejected claims must not insert: have %d rows", len(all))
	}
}
