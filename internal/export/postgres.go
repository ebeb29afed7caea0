package export

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// PostgresWriter mirrors exported tables into PostgreSQL so downstream BI
// tools can query the same views the dashboard serves. Each table is
// replaced wholesale on every export.
type PostgresWriter struct {
	db *sql.DB
}

func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	return &PostgresWriter{db: db}, nil
}

func (pw *PostgresWriter) Write(t Table) error {
	table := "dashboard_" + t.Name

	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = quoteIdent(c) + " TEXT"
	}
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		quoteIdent(table), strings.Join(cols, ", "))
	if _, err := pw.db.Exec(ddl); err != nil {
		return fmt.Errorf("postgres: create %s: %w", table, err)
	}

	tx, err := pw.db.Begin()
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + quoteIdent(table)); err != nil {
		return fmt.Errorf("postgres: clear %s: %w", table, err)
	}

	placeholders := make([]string, len(t.Columns))
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		names[i] = quoteIdent(c)
	}
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(names, ", "), strings.Join(placeholders, ", ")))
	if err != nil {
		return fmt.Errorf("postgres: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range t.Rows {
		args := make([]interface{}, len(row))
		for i, v := range row {
			args[i] = v
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("postgres: insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit %s: %w", table, err)
	}

	fmt.Printf("📦 Exported %s to Postgres (%d rows)\n", table, len(t.Rows))
	return nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
