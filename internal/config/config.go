package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries every runtime knob of the dashboard backend. Values come
// from a local .env file when present, then the process environment, then
// the defaults below.
type Config struct {
	Addr       string // HTTP listen address
	DataDir    string // directory holding the dataset CSV files
	SnapshotDB string // SQLite file for view snapshots

	// SnapshotCron optionally schedules periodic snapshots of the default
	// views, e.g. "@every 1h". Empty disables the schedule.
	SnapshotCron string

	ExportDir   string // destination for CSV/XLSX exports
	PostgresDSN string // optional Postgres export target

	MinRatings         int // default minimum sample size for satisfaction views
	TopLimit           int // default N for the top-rated ranking
	MigrationThreshold int // complaint delta counted as significant migration
}

// Load reads the configuration. A missing .env file is not an error.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		fmt.Println("ℹ️ No .env file found, using environment and defaults")
	}

	return &Config{
		Addr:               getEnv("DASHBOARD_ADDR", ":8080"),
		DataDir:            getEnv("DASHBOARD_DATA_DIR", "data"),
		SnapshotDB:         getEnv("DASHBOARD_SNAPSHOT_DB", "dashboard.db"),
		SnapshotCron:       getEnv("DASHBOARD_SNAPSHOT_CRON", ""),
		ExportDir:          getEnv("DASHBOARD_EXPORT_DIR", "exports"),
		PostgresDSN:        getEnv("DASHBOARD_POSTGRES_DSN", ""),
		MinRatings:         getEnvInt("DASHBOARD_MIN_RATINGS", 50),
		TopLimit:           getEnvInt("DASHBOARD_TOP_LIMIT", 5),
		MigrationThreshold: getEnvInt("DASHBOARD_MIGRATION_THRESHOLD", 5000),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
