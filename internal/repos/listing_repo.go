package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"foodwaste/internal/domain"
)

type ListingRepo struct{ db *sqlx.DB }

func NewListingRepo(db *sqlx.DB) *ListingRepo { return &ListingRepo{db: db} }

// ListAll returns every listing in natural order.
func (r *ListingRepo) ListAll() ([]domain.FoodListing, error) {
	out := []domain.FoodListing{}
	err := r.db.Select(&out, `
		SELECT Food_ID, Food_Name, Quantity, Expiry_Date, Provider_ID,
		       Provider_Type, Location, Food_Type, Meal_Type
		FROM food_listings
		ORDER BY rowid
	`)
	return out, err
}

// ByID returns the rows carrying foodID (normally at most one).
func (r *ListingRepo) ByID(foodID int64) ([]domain.FoodListing, error) {
	out := []domain.FoodListing{}
	err := r.db.Select(&out, `
		SELECT Food_ID, Food_Name, Quantity, Expiry_Date, Provider_ID,
		       Provider_Type, Location, Food_Type, Meal_Type
		FROM food_listings
		WHERE Food_ID = ?
		ORDER BY rowid
	`, foodID)
	return out, err
}

// Create inserts one listing with every column in declared order. The
// insert is guarded by the Food_ID lookup in the same statement; when a
// row with that id already exists nothing is written and ErrDuplicateKey
// is returned.
func (r *ListingRepo) Create(l domain.FoodListing) error {
	res, err := r.db.Exec(`
		INSERT INTO food_listings
		  (Food_ID, Food_Name, Quantity, Expiry_Date, Provider_ID, Provider_Type, Location, Food_Type, Meal_Type)
		SELECT ?, ?, ?, ?, ?, ?, ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM food_listings WHERE Food_ID = ?)
	`, l.FoodID, l.FoodName, l.Quantity, l.ExpiryDate, l.ProviderID, l.ProviderType, l.Location, l.FoodType, l.MealType, l.FoodID)
	if err != nil {
		return storeErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: Food_ID %d", domain.ErrDuplicateKey, l.FoodID)
	}
	return nil
}

// UpdateQuantity sets Quantity for foodID and reports rows affected.
func (r *ListingRepo) UpdateQuantity(foodID int64, qty int) (int64, error) {
	res, err := r.db.Exec(`UPDATE food_listings SET Quantity = ? WHERE Food_ID = ?`, qty, foodID)
	if err != nil {
		return 0, storeErr(err)
	}
	return res.RowsAffected()
}

// Delete removes foodID and reports rows affected.
func (r *ListingRepo) Delete(foodID int64) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM food_listings WHERE Food_ID = ?`, foodID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
