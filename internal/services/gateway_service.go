package services

import (
	"fmt"
	"time"

	"foodwaste/internal/domain"
	"foodwaste/internal/metrics"
	"foodwaste/internal/repos"
	"foodwaste/internal/validate"
)

// GatewayService is the whole write API. Each operation validates, then
// issues exactly one statement which commits on return.
type GatewayService struct {
	Listings *repos.ListingRepo
	Claims   *repos.ClaimRepo
	Now      func() time.Time
}

func NewGatewayService(listings *repos.ListingRepo, claims *repos.ClaimRepo) *GatewayService {
	return &GatewayService{Listings: listings, Claims: claims, Now: time.Now}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrValidation}, args...)...)
}

// CreateListing inserts l as given, with Expiry_Date normalized. A
// Food_ID already in the store is rejected with ErrDuplicateKey.
func (s *GatewayService) CreateListing(l domain.FoodListing) (err error) {
	defer func() { metrics.Mutations.WithLabelValues("listing.create", metrics.Result(err)).Inc() }()

	if l.Quantity < 0 {
		return invalid("quantity %d is negative", l.Quantity)
	}
	d, ok := validate.Date(l.ExpiryDate)
	if !ok {
		return invalid("expiry date %q is not a date", l.ExpiryDate)
	}
	l.ExpiryDate = d
	return s.Listings.Create(l)
}

// UpdateQuantity returns the number of rows changed; 0 means foodID was
// absent, which is not an error.
func (s *GatewayService) UpdateQuantity(foodID int64, qty int) (n int64, err error) {
	defer func() { metrics.Mutations.WithLabelValues("listing.quantity", metrics.Result(err)).Inc() }()

	if qty < 0 {
		return 0, invalid("quantity %d is negative", qty)
	}
	return s.Listings.UpdateQuantity(foodID, qty)
}

func (s *GatewayService) DeleteListing(foodID int64) (n int64, err error) {
	defer func() { metrics.Mutations.WithLabelValues("listing.delete", metrics.Result(err)).Inc() }()
	return s.Listings.Delete(foodID)
}

// CreateClaim records a claim. Food and receiver ids are not checked
// against their tables.
func (s *GatewayService) CreateClaim(in domain.NewClaim) (c domain.Claim, err error) {
	defer func() { metrics.Mutations.WithLabelValues("claim.create", metrics.Result(err)).Inc() }()

	if !in.Status.Valid() {
		return domain.Claim{}, invalid("status %q is not one of Pending, Completed, Cancelled", in.Status)
	}
	ts := s.Now().Format(domain.TimestampLayout)
	if in.Timestamp != "" {
		v, ok := validate.Timestamp(in.Timestamp)
		if !ok {
			return domain.Claim{}, invalid("timestamp %q is not a date-time", in.Timestamp)
		}
		ts = v
	}
	return s.Claims.Create(in.FoodID, in.ReceiverID, in.Status, ts)
}
