package pipeline

import (
	"math"
	"testing"

	"go-dashboard-pipeline/internal/dataset"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func complaintsFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{"California", "Texas"}, series.String, dataset.ColState),
		series.New([]string{"CA", "TX"}, series.String, dataset.ColStateCode),
		series.New([]int{100000, 50000}, series.Int, dataset.ComplaintsCol(2024)),
		series.New([]int{90000, 80000}, series.Int, dataset.ComplaintsCol(2023)),
		series.New([]int{85000, 76000}, series.Int, dataset.ComplaintsCol(2022)),
		series.New([]int{80000, 72000}, series.Int, dataset.ComplaintsCol(2021)),
		series.New([]float64{1200.5, math.NaN()}, series.Float, dataset.ColLosses),
	)
}

func TestComplaintDelta(t *testing.T) {
	rep, err := ComplaintDelta(complaintsFrame(), 2024, 5000)
	require.NoError(t, err)
	require.NotNil(t, rep)

	assert.Equal(t, 2024, rep.Year)
	assert.Equal(t, 2023, rep.PrevYear)

	assert.Equal(t, "California", rep.TopGain.State)
	assert.Equal(t, 10000, rep.TopGain.Delta)
	assert.Equal(t, "Texas", rep.TopLoss.State)
	assert.Equal(t, -30000, rep.TopLoss.Delta)

	// One of two states above +5000, one below -5000.
	assert.InDelta(t, 50.0, rep.InboundPct, 1e-9)
	assert.InDelta(t, 50.0, rep.OutboundPct, 1e-9)
	assert.Len(t, rep.Entries, 2)
}

func TestComplaintDeltaFirstYearHasNoReport(t *testing.T) {
	rep, err := ComplaintDelta(complaintsFrame(), 2021, 5000)
	require.NoError(t, err)
	assert.Nil(t, rep)
}

func TestComplaintDeltaUnknownYear(t *testing.T) {
	_, err := ComplaintDelta(complaintsFrame(), 2019, 5000)
	assert.Error(t, err)
}

func TestComplaintDeltaTieKeepsTableOrder(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"Alabama", "Alaska"}, series.String, dataset.ColState),
		series.New([]string{"AL", "AK"}, series.String, dataset.ColStateCode),
		series.New([]int{2000, 2000}, series.Int, dataset.ComplaintsCol(2024)),
		series.New([]int{1000, 1000}, series.Int, dataset.ComplaintsCol(2023)),
		series.New([]float64{0, 0}, series.Float, dataset.ColLosses),
	)

	rep, err := ComplaintDelta(df, 2024, 5000)
	require.NoError(t, err)
	assert.Equal(t, "Alabama", rep.TopGain.State)
	assert.Equal(t, "Alabama", rep.TopLoss.State)
}

func TestStateTableSortedDescending(t *testing.T) {
	rows, err := StateTable(complaintsFrame(), 2023)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "California", rows[0].State)
	assert.Equal(t, 90000, rows[0].Complaints)
	assert.Equal(t, "Texas", rows[1].State)

	require.NotNil(t, rows[0].Losses)
	assert.InDelta(t, 1200.5, *rows[0].Losses, 1e-9)
	assert.Nil(t, rows[1].Losses)
}

func TestStateTableUnknownYear(t *testing.T) {
	_, err := StateTable(complaintsFrame(), 2019)
	assert.Error(t, err)
}

func TestHeatmapLongForm(t *testing.T) {
	cells := Heatmap(complaintsFrame())
	require.Len(t, cells, 2*len(dataset.ComplaintYears))

	// Oldest year first, every state per year.
	assert.Equal(t, 2021, cells[0].Year)
	assert.Equal(t, "California", cells[0].State)
	assert.Equal(t, 80000, cells[0].Complaints)

	last := cells[len(cells)-1]
	assert.Equal(t, 2024, last.Year)
	assert.Equal(t, "Texas", last.State)
	assert.Equal(t, 50000, last.Complaints)
}
