package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"foodwaste/internal/domain"
	"foodwaste/internal/validate"
)

// Batch is a fully parsed set of sources, staged in memory before it is
// swapped into the store.
type Batch struct {
	Providers []domain.Provider
	Receivers []domain.Receiver
	Listings  []domain.FoodListing
	Claims    []domain.Claim
}

// Counts returns rows per table.
func (b Batch) Counts() map[string]int {
	return map[string]int{
		Providers: len(b.Providers),
		Receivers: len(b.Receivers),
		Listings:  len(b.Listings),
		Claims:    len(b.Claims),
	}
}

// Read opens and parses all four sources. Nothing is returned unless
// every source parsed cleanly.
func Read(src Sources) (Batch, error) {
	var b Batch
	for _, table := range Tables {
		recs, err := readTable(src, table)
		if err != nil {
			return Batch{}, err
		}
		for i, rec := range recs {
			c := cells{table: table, line: i + 2, rec: rec}
			switch table {
			case Providers:
				b.Providers = append(b.Providers, domain.Provider{
					ProviderID: c.id(0), Name: rec[1], Type: rec[2], City: rec[3], Contact: rec[4],
				})
			case Receivers:
				b.Receivers = append(b.Receivers, domain.Receiver{
					ReceiverID: c.id(0), Name: rec[1], City: rec[2], Contact: rec[3],
				})
			case Listings:
				b.Listings = append(b.Listings, domain.FoodListing{
					FoodID:       c.id(0),
					FoodName:     rec[1],
					Quantity:     c.quantity(2),
					ExpiryDate:   c.date(3),
					ProviderID:   c.optionalID(4),
					ProviderType: rec[5],
					Location:     rec[6],
					FoodType:     rec[7],
					MealType:     rec[8],
				})
			case Claims:
				b.Claims = append(b.Claims, domain.Claim{
					ClaimID:    c.id(0),
					FoodID:     c.id(1),
					ReceiverID: c.id(2),
					Status:     c.status(3),
					Timestamp:  c.timestamp(4),
				})
			}
			if c.err != nil {
				return Batch{}, c.err
			}
		}
	}
	return b, nil
}

func readTable(src Sources, table string) ([][]string, error) {
	rc, err := src.Open(table)
	if err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, table, err)
	}
	defer rc.Close()

	r := csv.NewReader(rc)
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s: missing header", domain.ErrSchemaMismatch, table)
	}
	if err != nil {
		return nil, readErr(table, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if !slices.Equal(header, Headers[table]) {
		return nil, fmt.Errorf("%w: %s: columns %v, want %v", domain.ErrSchemaMismatch, table, header, Headers[table])
	}
	recs, err := r.ReadAll()
	if err != nil {
		return nil, readErr(table, err)
	}
	return recs, nil
}

func readErr(table string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %s: %v", domain.ErrSchemaMismatch, table, err)
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, table, err)
}

// cells converts one record, keeping the first conversion error.
type cells struct {
	table string
	line  int
	rec   []string
	err   error
}

func (c *cells) fail(i int, want string) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: %s line %d column %s: %q is not %s",
			domain.ErrSchemaMismatch, c.table, c.line, Headers[c.table][i], c.rec[i], want)
	}
}

func (c *cells) id(i int) int64 {
	n, ok := parseInt(c.rec[i])
	if !ok {
		c.fail(i, "an integer")
	}
	return n
}

func (c *cells) optionalID(i int) *int64 {
	if strings.TrimSpace(c.rec[i]) == "" {
		return nil
	}
	n := c.id(i)
	return &n
}

func (c *cells) quantity(i int) int {
	n, ok := parseInt(c.rec[i])
	if !ok || n < 0 {
		c.fail(i, "a non-negative integer")
	}
	return int(n)
}

func (c *cells) date(i int) string {
	d, ok := validate.Date(c.rec[i])
	if !ok {
		c.fail(i, "a date")
	}
	return d
}

func (c *cells) timestamp(i int) string {
	ts, ok := validate.Timestamp(c.rec[i])
	if !ok {
		c.fail(i, "a date-time")
	}
	return ts
}

func (c *cells) status(i int) domain.ClaimStatus {
	s, ok := validate.Status(c.rec[i])
	if !ok {
		c.fail(i, "a claim status")
	}
	return s
}

// parseInt accepts plain integers and integral floats ("12.0"), which
// spreadsheet exports produce for id columns.
func parseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
