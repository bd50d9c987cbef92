package repos

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"foodwaste/internal/domain"
	"foodwaste/internal/ingest"
)

// OpenDB opens the store and makes sure the four tables exist. The pool
// is pinned to one connection so ":memory:" stores survive and callers
// are serialized.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

// No foreign keys and no unique keys: orphaned rows and repeated ids in
// a source load as they are.
var tableDDL = map[string]string{
	ingest.Providers: `
CREATE TABLE IF NOT EXISTS providers(
  Provider_ID INTEGER NOT NULL,
  Name        TEXT,
  Type        TEXT,
  City        TEXT,
  Contact     TEXT
)`,
	ingest.Receivers: `
CREATE TABLE IF NOT EXISTS receivers(
  Receiver_ID INTEGER NOT NULL,
  Name        TEXT,
  City        TEXT,
  Contact     TEXT
)`,
	ingest.Listings: `
CREATE TABLE IF NOT EXISTS food_listings(
  Food_ID       INTEGER NOT NULL,
  Food_Name     TEXT,
  Quantity      INTEGER NOT NULL CHECK (Quantity >= 0),
  Expiry_Date   TEXT,
  Provider_ID   INTEGER,
  Provider_Type TEXT,
  Location      TEXT,
  Food_Type     TEXT,
  Meal_Type     TEXT
)`,
	ingest.Claims: `
CREATE TABLE IF NOT EXISTS claims(
  Claim_ID    INTEGER NOT NULL,
  Food_ID     INTEGER,
  Receiver_ID INTEGER,
  Status      TEXT NOT NULL CHECK (Status IN ('Pending','Completed','Cancelled')),
  Timestamp   TEXT
)`,
}

func ensureSchema(db *sqlx.DB) error {
	for _, t := range ingest.Tables {
		if _, err := db.Exec(tableDDL[t]); err != nil {
			return fmt.Errorf("create %s: %w", t, err)
		}
	}
	return nil
}

// storeErr maps CHECK and NOT NULL violations onto ErrValidation.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	// Extended codes (SQLITE_CONSTRAINT_CHECK, ...) share the primary code
	// in their low byte.
	if se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return err
}
