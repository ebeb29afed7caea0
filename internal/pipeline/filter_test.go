package pipeline

import (
	"testing"

	"go-dashboard-pipeline/internal/dataset"
	"go-dashboard-pipeline/internal/model"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

// ratingsFrame mirrors the exploded form the loader produces.
func ratingsFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]int{0, 0, 1, 2, 3}, series.Int, dataset.ColRowID),
		series.New([]string{"Action", "Drama", "Drama", "Action", "Comedy"}, series.String, dataset.ColGenre),
		series.New([]int{25, 25, 32, 25, 40}, series.Int, dataset.ColAge),
		series.New([]string{"M", "M", "F", "M", "F"}, series.String, dataset.ColGender),
		series.New([]string{"engineer", "engineer", "artist", "engineer", "teacher"}, series.String, dataset.ColOccupation),
		series.New([]int{1999, 1999, 1994, 1999, 2001}, series.Int, dataset.ColYear),
		series.New([]float64{4, 4, 5, 2, 3}, series.Float, dataset.ColRating),
		series.New([]string{"The Matrix", "The Matrix", "Forrest Gump", "The Matrix", "Amelie"}, series.String, dataset.ColTitle),
	)
}

func TestApplyFilterNoRestriction(t *testing.T) {
	df := ratingsFrame()
	got := ApplyFilter(df, model.FilterSpec{})
	assert.Equal(t, df.Nrow(), got.Nrow())
}

func TestApplyFilterAgeRangeInclusive(t *testing.T) {
	df := ratingsFrame()

	got := ApplyFilter(df, model.FilterSpec{AgeMin: intp(25), AgeMax: intp(32)})
	require.Equal(t, 4, got.Nrow())
	for _, v := range got.Col(dataset.ColAge).Records() {
		assert.Contains(t, []string{"25", "32"}, v)
	}
}

func TestApplyFilterSetMembership(t *testing.T) {
	df := ratingsFrame()

	got := ApplyFilter(df, model.FilterSpec{Genres: []string{"Drama"}})
	require.Equal(t, 2, got.Nrow())
	for _, v := range got.Col(dataset.ColGenre).Records() {
		assert.Equal(t, "Drama", v)
	}
}

func TestApplyFilterComposesWithAnd(t *testing.T) {
	df := ratingsFrame()

	got := ApplyFilter(df, model.FilterSpec{
		AgeMin:  intp(25),
		AgeMax:  intp(30),
		Genders: []string{"M"},
		Genres:  []string{"Action"},
	})
	require.Equal(t, 2, got.Nrow())
	assert.Equal(t, []string{"Action", "Action"}, got.Col(dataset.ColGenre).Records())
}

func TestApplyFilterEmptySelectionMatchesNothing(t *testing.T) {
	df := ratingsFrame()

	// Everything deselected beats every other predicate.
	got := ApplyFilter(df, model.FilterSpec{
		AgeMin:  intp(0),
		AgeMax:  intp(99),
		Genders: []string{},
	})
	assert.Equal(t, 0, got.Nrow())
}

func TestApplyFilterNeverGrowsAndNeverMutates(t *testing.T) {
	df := ratingsFrame()
	before := df.Col(dataset.ColRating).Records()

	got := ApplyFilter(df, model.FilterSpec{Occupations: []string{"artist"}})
	assert.LessOrEqual(t, got.Nrow(), df.Nrow())
	assert.Equal(t, before, df.Col(dataset.ColRating).Records())
	assert.Equal(t, 5, df.Nrow())
}
