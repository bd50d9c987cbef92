package repos

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"foodwaste/internal/domain"
	"foodwaste/internal/ingest"
)

// StoreRepo owns whole-table operations: the bulk replace and raw dumps.
type StoreRepo struct{ db *sqlx.DB }

func NewStoreRepo(db *sqlx.DB) *StoreRepo { return &StoreRepo{db: db} }

var insertSQL = map[string]string{
	ingest.Providers: `INSERT INTO providers(Provider_ID, Name, Type, City, Contact)
		VALUES (:Provider_ID, :Name, :Type, :City, :Contact)`,
	ingest.Receivers: `INSERT INTO receivers(Receiver_ID, Name, City, Contact)
		VALUES (:Receiver_ID, :Name, :City, :Contact)`,
	ingest.Listings: `INSERT INTO food_listings(Food_ID, Food_Name, Quantity, Expiry_Date, Provider_ID, Provider_Type, Location, Food_Type, Meal_Type)
		VALUES (:Food_ID, :Food_Name, :Quantity, :Expiry_Date, :Provider_ID, :Provider_Type, :Location, :Food_Type, :Meal_Type)`,
	ingest.Claims: `INSERT INTO claims(Claim_ID, Food_ID, Receiver_ID, Status, Timestamp)
		VALUES (:Claim_ID, :Food_ID, :Receiver_ID, :Status, :Timestamp)`,
}

// Replace drops and recreates all four tables and fills them from b, in
// one transaction. On any error the previous contents stay in place.
func (r *StoreRepo) Replace(b ingest.Batch) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, t := range ingest.Tables {
		if _, err := tx.Exec(`DROP TABLE IF EXISTS ` + t); err != nil {
			return fmt.Errorf("drop %s: %w", t, err)
		}
		if _, err := tx.Exec(tableDDL[t]); err != nil {
			return fmt.Errorf("create %s: %w", t, err)
		}
	}

	if err := insertAll(tx, ingest.Providers, b.Providers); err != nil {
		return err
	}
	if err := insertAll(tx, ingest.Receivers, b.Receivers); err != nil {
		return err
	}
	if err := insertAll(tx, ingest.Listings, b.Listings); err != nil {
		return err
	}
	if err := insertAll(tx, ingest.Claims, b.Claims); err != nil {
		return err
	}
	return tx.Commit()
}

func insertAll[T any](tx *sqlx.Tx, table string, rows []T) error {
	stmt, err := tx.PrepareNamed(insertSQL[table])
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i := range rows {
		if _, err := stmt.Exec(rows[i]); err != nil {
			return fmt.Errorf("%s row %d: %w", table, i+1, storeErr(err))
		}
	}
	return nil
}

// Dump returns a whole table in natural (insertion) order.
func (r *StoreRepo) Dump(table string) (domain.Table, error) {
	cols, ok := ingest.Headers[table]
	if !ok {
		return domain.Table{}, fmt.Errorf("%w: %q", domain.ErrUnknownTable, table)
	}
	q := `SELECT ` + strings.Join(cols, ", ") + ` FROM ` + table + ` ORDER BY rowid`
	return queryTable(r.db, q)
}

// Counts returns the row count of every table.
func (r *StoreRepo) Counts() (map[string]int, error) {
	out := make(map[string]int, len(ingest.Tables))
	for _, t := range ingest.Tables {
		var n int
		if err := r.db.Get(&n, `SELECT COUNT(*) FROM `+t); err != nil {
			return nil, err
		}
		out[t] = n
	}
	return out, nil
}
