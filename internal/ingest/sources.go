package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"foodwaste/internal/domain"
)

// Table names, which are also the source keys.
const (
	Providers = "providers"
	Receivers = "receivers"
	Listings  = "food_listings"
	Claims    = "claims"
)

// Tables in load order.
var Tables = []string{Providers, Receivers, Listings, Claims}

// Headers are the exact column lists each source must carry.
var Headers = map[string][]string{
	Providers: {"Provider_ID", "Name", "Type", "City", "Contact"},
	Receivers: {"Receiver_ID", "Name", "City", "Contact"},
	Listings:  {"Food_ID", "Food_Name", "Quantity", "Expiry_Date", "Provider_ID", "Provider_Type", "Location", "Food_Type", "Meal_Type"},
	Claims:    {"Claim_ID", "Food_ID", "Receiver_ID", "Status", "Timestamp"},
}

// Sources hands out a reader per table.
type Sources interface {
	Open(table string) (io.ReadCloser, error)
}

// Dir reads the four CSV files from one directory.
type Dir struct {
	Path  string
	Files map[string]string // table -> file name
}

func DefaultFiles() map[string]string {
	return map[string]string{
		Providers: "providers_data.csv",
		Receivers: "receivers_data.csv",
		Listings:  "food_listings_data.csv",
		Claims:    "claims_data.csv",
	}
}

func NewDir(path string, files map[string]string) Dir {
	if files == nil {
		files = DefaultFiles()
	}
	return Dir{Path: path, Files: files}
}

func (d Dir) Open(table string) (io.ReadCloser, error) {
	name, ok := d.Files[table]
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: no file configured for %s", domain.ErrSourceUnavailable, table)
	}
	f, err := os.Open(filepath.Join(d.Path, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, table, err)
	}
	return f, nil
}

// Memory serves sources from strings, keyed by table.
type Memory map[string]string

func (m Memory) Open(table string) (io.ReadCloser, error) {
	s, ok := m[table]
	if !ok {
		return nil, fmt.Errorf("%w: %s: not provided", domain.ErrSourceUnavailable, table)
	}
	return io.NopCloser(strings.NewReader(s)), nil
}
