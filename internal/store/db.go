package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"go-dashboard-pipeline/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the SQLite database and creates the tables if needed.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	snapshotTable := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		dataset TEXT,
		view TEXT,
		params TEXT,
		payload TEXT,
		created_at DATETIME
	);
	`
	loadErrorTable := `
	CREATE TABLE IF NOT EXISTS load_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(snapshotTable); err != nil {
		return err
	}
	if _, err := db.Exec(loadErrorTable); err != nil {
		return err
	}

	return nil
}

// SaveSnapshot persists one computed view under the given id.
func SaveSnapshot(id, dataset, view string, params, payload interface{}) error {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return err
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO snapshots (id, dataset, view, params, payload, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, dataset, view, string(paramsJSON), string(payloadJSON), time.Now().UTC())
	return err
}

// ListSnapshots returns the most recent snapshots, newest first, without
// their payloads.
func ListSnapshots(limit int) ([]model.Snapshot, error) {
	rows, err := db.Query(`SELECT id, dataset, view, params, created_at FROM snapshots ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []model.Snapshot
	for rows.Next() {
		var s model.Snapshot
		var paramsJSON string
		if err := rows.Scan(&s.ID, &s.Dataset, &s.View, &paramsJSON, &s.CreatedAt); err != nil {
			return nil, err
		}
		var params interface{}
		if json.Unmarshal([]byte(paramsJSON), &params) == nil {
			s.Params = params
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

// GetSnapshot fetches one snapshot including its payload.
func GetSnapshot(id string) (*model.Snapshot, error) {
	var s model.Snapshot
	var paramsJSON, payloadJSON string

	err := db.QueryRow(`SELECT id, dataset, view, params, payload, created_at FROM snapshots WHERE id = ?`, id).
		Scan(&s.ID, &s.Dataset, &s.View, &paramsJSON, &payloadJSON, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	var params, payload interface{}
	if json.Unmarshal([]byte(paramsJSON), &params) == nil {
		s.Params = params
	}
	if json.Unmarshal([]byte(payloadJSON), &payload) == nil {
		s.Payload = payload
	}
	return &s, nil
}

// SaveLoadError records a dataset load failure for later inspection.
func SaveLoadError(path string, loadErr error) error {
	if loadErr == nil {
		return nil
	}
	_, err := db.Exec(`INSERT INTO load_errors (path, error_message, created_at) VALUES (?, ?, ?)`,
		path, loadErr.Error(), time.Now().UTC())
	return err
}
