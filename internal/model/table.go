package model

// ResultTable is a single-row wide table of named rates, the unit the
// pipeline hands to the store writer. A nil value means the rate is
// undefined (zero non-missing observations), which is distinct from 0.0
// and persists as SQL NULL.
type ResultTable struct {
	Name    string
	Columns []string
	Values  []*float64
}

// NewResultTable creates an empty one-row table
func NewResultTable(name string) *ResultTable {
	return &ResultTable{Name: name}
}

// Add appends a named rate column, preserving insertion order
func (t *ResultTable) Add(column string, value *float64) {
	t.Columns = append(t.Columns, column)
	t.Values = append(t.Values, value)
}

// Get returns the value of a named column and whether the column exists
func (t *ResultTable) Get(column string) (*float64, bool) {
	for i, c := range t.Columns {
		if c == column {
			return t.Values[i], true
		}
	}
	return nil, false
}
