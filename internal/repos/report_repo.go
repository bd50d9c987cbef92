package repos

import (
	"github.com/jmoiron/sqlx"

	"foodwaste/internal/catalogue"
	"foodwaste/internal/domain"
)

type ReportRepo struct{ db *sqlx.DB }

func NewReportRepo(db *sqlx.DB) *ReportRepo { return &ReportRepo{db: db} }

// Run executes a catalogue statement with already-bound arguments.
func (r *ReportRepo) Run(d catalogue.Descriptor, args ...any) (domain.Table, error) {
	return queryTable(r.db, d.SQL, args...)
}

type queryer interface {
	Queryx(query string, args ...any) (*sqlx.Rows, error)
}

// queryTable reads an arbitrary result set into a Table.
func queryTable(q queryer, query string, args ...any) (domain.Table, error) {
	rows, err := q.Queryx(query, args...)
	if err != nil {
		return domain.Table{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return domain.Table{}, err
	}
	t := domain.Table{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return domain.Table{}, err
		}
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		t.Rows = append(t.Rows, vals)
	}
	return t, rows.Err()
}
