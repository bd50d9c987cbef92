package repos

import (
	"github.com/jmoiron/sqlx"

	"foodwaste/internal/domain"
)

type ProviderRepo struct{ db *sqlx.DB }

func NewProviderRepo(db *sqlx.DB) *ProviderRepo { return &ProviderRepo{db: db} }

func (r *ProviderRepo) ListAll() ([]domain.Provider, error) {
	out := []domain.Provider{}
	err := r.db.Select(&out, `
		SELECT Provider_ID, Name, Type, City, Contact
		FROM providers
		ORDER BY rowid
	`)
	return out, err
}

type ReceiverRepo struct{ db *sqlx.DB }

func NewReceiverRepo(db *sqlx.DB) *ReceiverRepo { return &ReceiverRepo{db: db} }

func (r *ReceiverRepo) ListAll() ([]domain.Receiver, error) {
	out := []domain.Receiver{}
	err := r.db.Select(&out, `
		SELECT Receiver_ID, Name, City, Contact
		FROM receivers
		ORDER BY rowid
	`)
	return out, err
}
