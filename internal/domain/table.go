package domain

// Table is a tabular query result: ordered column names and rows of
// scalar values (int64, float64, string or nil).
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func (t Table) Len() int { return len(t.Rows) }

// Index returns the position of a column, or -1.
func (t Table) Index(col string) int {
	for i, c := range t.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

// Column returns every value of the named column in row order.
func (t Table) Column(col string) []any {
	i := t.Index(col)
	if i < 0 {
		return nil
	}
	out := make([]any, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, r[i])
	}
	return out
}

// Chartable reports whether the second column holds numbers, which is
// what the dashboard uses to decide on drawing a bar chart.
func (t Table) Chartable() bool {
	if len(t.Columns) < 2 {
		return false
	}
	seen := false
	for _, r := range t.Rows {
		switch r[1].(type) {
		case nil:
		case int64, float64, int:
			seen = true
		default:
			return false
		}
	}
	return seen
}
