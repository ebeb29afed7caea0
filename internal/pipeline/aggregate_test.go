package pipeline

import (
	"math"
	"testing"

	"go-dashboard-pipeline/internal/dataset"
	"go-dashboard-pipeline/internal/model"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCounts(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"Drama", "Action", "Action", "Comedy", "Action", "Drama"}, series.String, dataset.ColGenre),
	)

	got := CategoryCounts(df, dataset.ColGenre)
	require.Len(t, got, 3)
	assert.Equal(t, model.CategoryCount{Category: "Action", Count: 3}, got[0])
	assert.Equal(t, model.CategoryCount{Category: "Drama", Count: 2}, got[1])
	assert.Equal(t, model.CategoryCount{Category: "Comedy", Count: 1}, got[2])
}

func TestCategoryCountsTieKeepsInputOrder(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"Drama", "Action", "Action", "Drama"}, series.String, dataset.ColGenre),
	)

	got := CategoryCounts(df, dataset.ColGenre)
	require.Len(t, got, 2)
	assert.Equal(t, "Drama", got[0].Category)
	assert.Equal(t, "Action", got[1].Category)
}

func TestCategoryMeansThreshold(t *testing.T) {
	// Action has two ratings (mean 3.0), Drama one (excluded at floor 2).
	df := dataframe.New(
		series.New([]string{"Action", "Action", "Drama"}, series.String, dataset.ColGenre),
		series.New([]float64{4, 2, 5}, series.Float, dataset.ColRating),
	)

	got := CategoryMeans(df, dataset.ColGenre, dataset.ColRating, 2)
	require.Len(t, got, 1)
	assert.Equal(t, "Action", got[0].Category)
	assert.Equal(t, 2, got[0].Count)
	assert.InDelta(t, 3.0, got[0].Mean, 1e-9)
}

func TestCategoryMeansSkipsMissingValues(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"Action", "Action", "Drama"}, series.String, dataset.ColGenre),
		series.New([]float64{4, math.NaN(), math.NaN()}, series.Float, dataset.ColRating),
	)

	got := CategoryMeans(df, dataset.ColGenre, dataset.ColRating, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Action", got[0].Category)
	assert.Equal(t, 1, got[0].Count)
}

func TestCategoryMeansNoGroupQualifies(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"Action"}, series.String, dataset.ColGenre),
		series.New([]float64{4}, series.Float, dataset.ColRating),
	)

	assert.Empty(t, CategoryMeans(df, dataset.ColGenre, dataset.ColRating, 50))
}

func TestPeriodMeansSortedAscending(t *testing.T) {
	df := dataframe.New(
		series.New([]int{1999, 1994, 1999, 2001}, series.Int, dataset.ColYear),
		series.New([]float64{4, 5, 2, 3}, series.Float, dataset.ColRating),
	)

	got := PeriodMeans(df, dataset.ColYear, dataset.ColRating)
	require.Len(t, got, 3)
	assert.Equal(t, model.PeriodMean{Period: 1994, Count: 1, Mean: 5}, got[0])
	assert.Equal(t, model.PeriodMean{Period: 1999, Count: 2, Mean: 3}, got[1])
	assert.Equal(t, model.PeriodMean{Period: 2001, Count: 1, Mean: 3}, got[2])
}

func TestBestWorstPeriods(t *testing.T) {
	series := []model.PeriodMean{
		{Period: 1994, Count: 1, Mean: 5},
		{Period: 1999, Count: 2, Mean: 3},
		{Period: 2001, Count: 1, Mean: 3},
	}

	best, worst, ok := BestWorstPeriods(series)
	require.True(t, ok)
	assert.Equal(t, 1994, best.Period)
	// 1999 and 2001 tie on the low end; the earlier period wins.
	assert.Equal(t, 1999, worst.Period)

	_, _, ok = BestWorstPeriods(nil)
	assert.False(t, ok)
}

func TestTopRankedFloorAndLimit(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"A", "A", "B", "B", "C"}, series.String, dataset.ColTitle),
		series.New([]float64{5, 5, 4, 4, 5}, series.Float, dataset.ColRating),
	)

	got := TopRanked(df, dataset.ColTitle, dataset.ColRating, 2, 5)
	require.Len(t, got, 2) // C has one rating, below the floor
	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, "B", got[1].Title)

	got = TopRanked(df, dataset.ColTitle, dataset.ColRating, 1, 1)
	require.Len(t, got, 1)
}

func TestTopRankedTieBrokenByCount(t *testing.T) {
	// B and A share mean 4.0 but B has more ratings.
	df := dataframe.New(
		series.New([]string{"A", "B", "B"}, series.String, dataset.ColTitle),
		series.New([]float64{4, 4, 4}, series.Float, dataset.ColRating),
	)

	got := TopRanked(df, dataset.ColTitle, dataset.ColRating, 1, 5)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Title)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, "A", got[1].Title)
}

func TestTopRankedNoTitleQualifies(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"A"}, series.String, dataset.ColTitle),
		series.New([]float64{4}, series.Float, dataset.ColRating),
	)

	assert.Empty(t, TopRanked(df, dataset.ColTitle, dataset.ColRating, 150, 5))
}
