package domain

type Provider struct {
	ProviderID int64  `db:"Provider_ID" json:"Provider_ID"`
	Name       string `db:"Name" json:"Name"`
	Type       string `db:"Type" json:"Type"`
	City       string `db:"City" json:"City"`
	Contact    string `db:"Contact" json:"Contact"`
}

type Receiver struct {
	ReceiverID int64  `db:"Receiver_ID" json:"Receiver_ID"`
	Name       string `db:"Name" json:"Name"`
	City       string `db:"City" json:"City"`
	Contact    string `db:"Contact" json:"Contact"`
}

// FoodListing is one row of food_listings. ProviderID is nil when the
// source left it blank.
type FoodListing struct {
	FoodID       int64  `db:"Food_ID" json:"Food_ID"`
	FoodName     string `db:"Food_Name" json:"Food_Name"`
	Quantity     int    `db:"Quantity" json:"Quantity"`
	ExpiryDate   string `db:"Expiry_Date" json:"Expiry_Date"` // YYYY-MM-DD
	ProviderID   *int64 `db:"Provider_ID" json:"Provider_ID"`
	ProviderType string `db:"Provider_Type" json:"Provider_Type"`
	Location     string `db:"Location" json:"Location"`
	FoodType     string `db:"Food_Type" json:"Food_Type"`
	MealType     string `db:"Meal_Type" json:"Meal_Type"`
}

type Claim struct {
	ClaimID    int64       `db:"Claim_ID" json:"Claim_ID"`
	FoodID     int64       `db:"Food_ID" json:"Food_ID"`
	ReceiverID int64       `db:"Receiver_ID" json:"Receiver_ID"`
	Status     ClaimStatus `db:"Status" json:"Status"`
	Timestamp  string      `db:"Timestamp" json:"Timestamp"` // YYYY-MM-DD HH:MM:SS
}

// NewClaim is the input of claim creation. A zero Timestamp means "now".
type NewClaim struct {
	FoodID     int64       `json:"Food_ID"`
	ReceiverID int64       `json:"Receiver_ID"`
	Status     ClaimStatus `json:"Status"`
	Timestamp  string      `json:"Timestamp,omitempty"`
}

// ListingContact is a listing joined with its provider's name and contact.
type ListingContact struct {
	FoodListing
	ProviderName    string `json:"Name"`
	ProviderContact string `json:"Contact"`
}

// Storage formats for date columns.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)
