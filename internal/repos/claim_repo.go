package repos

import (
	"github.com/jmoiron/sqlx"

	"foodwaste/internal/domain"
)

type ClaimRepo struct{ db *sqlx.DB }

func NewClaimRepo(db *sqlx.DB) *ClaimRepo { return &ClaimRepo{db: db} }

func (r *ClaimRepo) ListAll() ([]domain.Claim, error) {
	out := []domain.Claim{}
	err := r.db.Select(&out, `
		SELECT Claim_ID, Food_ID, Receiver_ID, Status, Timestamp
		FROM claims
		ORDER BY rowid
	`)
	return out, err
}

// Create inserts a claim and returns it with its assigned Claim_ID. The
// id is computed inside the same statement, so allocation and insert
// are one atomic write.
func (r *ClaimRepo) Create(foodID, receiverID int64, status domain.ClaimStatus, ts string) (domain.Claim, error) {
	var c domain.Claim
	err := r.db.Get(&c, `
		INSERT INTO claims (Claim_ID, Food_ID, Receiver_ID, Status, Timestamp)
		SELECT COALESCE(MAX(Claim_ID), 0) + 1, ?, ?, ?, ? FROM claims
		RETURNING Claim_ID, Food_ID, Receiver_ID, Status, Timestamp
	`, foodID, receiverID, string(status), ts)
	if err != nil {
		return domain.Claim{}, storeErr(err)
	}
	return c, nil
}

// StatusCounts returns claims per status, used by the overview.
func (r *ClaimRepo) StatusCounts() (map[domain.ClaimStatus]int, error) {
	var rows []struct {
		Status domain.ClaimStatus `db:"Status"`
		N      int                `db:"n"`
	}
	if err := r.db.Select(&rows, `SELECT Status, COUNT(*) AS n FROM claims GROUP BY Status`); err != nil {
		return nil, err
	}
	out := make(map[domain.ClaimStatus]int, len(rows))
	for _, x := range rows {
		out[x.Status] = x.N
	}
	return out, nil
}
