package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// CSVWriter writes each table to <dir>/<table name>.csv.
type CSVWriter struct {
	Dir string
}

func NewCSVWriter(dir string) (*CSVWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("csv: create export dir: %w", err)
	}
	return &CSVWriter{Dir: dir}, nil
}

func (cw *CSVWriter) Write(t Table) error {
	path := filepath.Join(cw.Dir, t.Name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: flush %s: %w", path, err)
	}

	fmt.Printf("📦 Exported %s (%d rows)\n", path, len(t.Rows))
	return nil
}

func (cw *CSVWriter) Close() error { return nil }
