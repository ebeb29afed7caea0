package export

// Table is the neutral tabular form every export backend consumes.
// Aggregation results are converted into a Table before writing so the
// CSV, XLSX and Postgres writers stay format-only.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Writer is the interface any export backend must satisfy.
type Writer interface {
	Write(t Table) error
	Close() error
}
