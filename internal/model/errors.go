package model

import (
	"fmt"
	"strings"
)

// MissingFileError is returned when none of the candidate dataset files exist.
// It is fatal: the dashboard cannot start without its source table.
type MissingFileError struct {
	Dir        string   `json:"dir"`
	Candidates []string `json:"candidates"`
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("no dataset file found in %s: expected one of %s",
		e.Dir, strings.Join(e.Candidates, ", "))
}

// MissingColumnError is returned when a required column (or every accepted
// alternative for it) is absent from the loaded table.
type MissingColumnError struct {
	Dataset string   `json:"dataset"`
	Columns []string `json:"columns"` // accepted alternatives, e.g. ["genres", "genre"]
}

func (e *MissingColumnError) Error() string {
	if len(e.Columns) == 1 {
		return fmt.Sprintf("%s dataset: missing required column %q", e.Dataset, e.Columns[0])
	}
	return fmt.Sprintf("%s dataset: missing required column (one of %s)",
		e.Dataset, strings.Join(e.Columns, ", "))
}

// UnknownSchemaError is returned when a file matches neither supported schema.
type UnknownSchemaError struct {
	Path    string   `json:"path"`
	Headers []string `json:"headers"`
}

func (e *UnknownSchemaError) Error() string {
	return fmt.Sprintf("unrecognized dataset schema in %s (columns: %s)",
		e.Path, strings.Join(e.Headers, ", "))
}
