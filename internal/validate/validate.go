package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"foodwaste/internal/domain"
)

var (
	reID     = regexp.MustCompile(`^-?[0-9]{1,18}$`)
	reStatus = regexp.MustCompile(`^(Pending|Completed|Cancelled)$`)
	reTable  = regexp.MustCompile(`^(providers|receivers|food_listings|claims)$`)
)

// Accepted input layouts, most specific first.
var (
	dateLayouts = []string{
		"2006-01-02",
		"1/2/2006",
		"01/02/2006",
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04",
		"1/2/2006 15:04",
		"1/2/2006 15:04:05",
	}
	timestampLayouts = []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05.999999",
		"2006-01-02T15:04:05",
		time.RFC3339,
		"2006-01-02 15:04",
		"1/2/2006 15:04",
		"1/2/2006 15:04:05",
		"01/02/2006 15:04",
		"2006-01-02",
		"1/2/2006",
	}
)

// ID parses a numeric natural key (Food_ID, Provider_ID, ...).
func ID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if !reID.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}

// Quantity accepts non-negative integers only.
func Quantity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func Status(s string) (domain.ClaimStatus, bool) {
	s = strings.TrimSpace(s)
	return domain.ClaimStatus(s), reStatus.MatchString(s)
}

// Date parses any accepted date layout and returns it as YYYY-MM-DD.
func Date(s string) (string, bool) {
	t, ok := parse(s, dateLayouts)
	if !ok {
		return "", false
	}
	return t.Format(domain.DateLayout), true
}

// Timestamp parses any accepted date-time layout and returns it as
// YYYY-MM-DD HH:MM:SS.
func Timestamp(s string) (string, bool) {
	t, ok := parse(s, timestampLayouts)
	if !ok {
		return "", false
	}
	return t.Format(domain.TimestampLayout), true
}

func parse(s string, layouts []string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Text validates a free-text field: trimmed, printable, at most max bytes.
func Text(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) > max {
		return "", false
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return "", false
		}
	}
	return s, true
}

// Table validates one of the four store table names.
func Table(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reTable.MatchString(s)
}
