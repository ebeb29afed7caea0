package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"go-dashboard-pipeline/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w, err := NewCSVWriter(dir)
	require.NoError(t, err)

	table := Table{
		Name:    "genre_counts",
		Columns: []string{"genre", "count"},
		Rows:    [][]string{{"Action", "1200"}, {"Drama", "800"}},
	}
	require.NoError(t, w.Write(table))
	require.NoError(t, w.Close())

	f, err := os.Open(filepath.Join(dir, "genre_counts.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"genre", "count"}, records[0])
	assert.Equal(t, []string{"Action", "1200"}, records[1])
}

func TestStateTableConversion(t *testing.T) {
	loss := 1200.5
	table := StateTable("complaints_2024", []model.StateComplaints{
		{State: "California", StateCode: "CA", Complaints: 100000, Losses: &loss},
		{State: "Texas", StateCode: "TX", Complaints: 50000},
	})

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"California", "CA", "100000", "1200.50"}, table.Rows[0])
	// Missing losses export as an empty cell, not zero.
	assert.Equal(t, "", table.Rows[1][3])
}

func TestRankedTitlesConversion(t *testing.T) {
	table := RankedTitles("top_titles", []model.RankedTitle{
		{Title: "The Matrix", Count: 259, Mean: 4.32},
		{Title: "Forrest Gump", Count: 311, Mean: 4.3},
	})

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"1", "The Matrix", "4.32", "259"}, table.Rows[0])
	assert.Equal(t, "2", table.Rows[1][0])
}

func TestDeltaReportConversionNilReport(t *testing.T) {
	table := DeltaReport("migration_2021", nil)
	assert.Empty(t, table.Rows)
	assert.NotEmpty(t, table.Columns)
}
