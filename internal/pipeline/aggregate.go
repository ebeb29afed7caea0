package pipeline

import (
	"math"
	"sort"

	"go-dashboard-pipeline/internal/model"

	"github.com/go-gota/gota/dataframe"
)

// CategoryCounts groups the table by a categorical column and counts rows
// per group, sorted descending by count. Ties keep first-occurrence order.
func CategoryCounts(df dataframe.DataFrame, groupCol string) []model.CategoryCount {
	if df.Nrow() == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, key := range df.Col(groupCol).Records() {
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	out := make([]model.CategoryCount, 0, len(order))
	for _, key := range order {
		out = append(out, model.CategoryCount{Category: key, Count: counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// CategoryMeans groups by a categorical column and computes the arithmetic
// mean of a numeric column per group, over available values only. Groups
// with fewer than minCount qualifying rows are dropped before sorting
// descending by mean; a group whose values are all missing never appears.
// An empty result means no group met the threshold, not an error.
func CategoryMeans(df dataframe.DataFrame, groupCol, valueCol string, minCount int) []model.CategoryMean {
	if df.Nrow() == 0 {
		return nil
	}

	keys := df.Col(groupCol).Records()
	values := df.Col(valueCol)

	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for i, key := range keys {
		v := values.Elem(i).Float()
		if math.IsNaN(v) {
			continue
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		sums[key] += v
		counts[key]++
	}

	out := make([]model.CategoryMean, 0, len(order))
	for _, key := range order {
		if counts[key] < minCount {
			continue
		}
		out = append(out, model.CategoryMean{
			Category: key,
			Count:    counts[key],
			Mean:     sums[key] / float64(counts[key]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Mean > out[j].Mean })
	return out
}

// PeriodMeans groups by an ordinal column (e.g. release year) and computes
// the mean of a numeric column per period, sorted ascending by the ordinal
// key. Rows with a missing period or value are excluded.
func PeriodMeans(df dataframe.DataFrame, periodCol, valueCol string) []model.PeriodMean {
	if df.Nrow() == 0 {
		return nil
	}

	periods := df.Col(periodCol)
	values := df.Col(valueCol)

	sums := make(map[int]float64)
	counts := make(map[int]int)

	for i := 0; i < df.Nrow(); i++ {
		p := periods.Elem(i).Float()
		v := values.Elem(i).Float()
		if math.IsNaN(p) || math.IsNaN(v) {
			continue
		}
		period := int(p)
		sums[period] += v
		counts[period]++
	}

	out := make([]model.PeriodMean, 0, len(counts))
	for period, count := range counts {
		out = append(out, model.PeriodMean{
			Period: period,
			Count:  count,
			Mean:   sums[period] / float64(count),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// BestWorstPeriods returns the periods with the highest and lowest means
// from an already computed series. Ties keep the earlier period. The second
// return is false for an empty series.
func BestWorstPeriods(series []model.PeriodMean) (best, worst model.PeriodMean, ok bool) {
	if len(series) == 0 {
		return model.PeriodMean{}, model.PeriodMean{}, false
	}
	best, worst = series[0], series[0]
	for _, pm := range series[1:] {
		if pm.Mean > best.Mean {
			best = pm
		}
		if pm.Mean < worst.Mean {
			worst = pm
		}
	}
	return best, worst, true
}

// TopRanked groups by an identity column (e.g. title), computes count and
// mean of a numeric column, keeps groups with at least minCount qualifying
// rows and returns the first limit entries sorted by mean descending, with
// count descending as the tie-break. An empty result means no group met the
// floor.
func TopRanked(df dataframe.DataFrame, idCol, valueCol string, minCount, limit int) []model.RankedTitle {
	if df.Nrow() == 0 {
		return nil
	}

	keys := df.Col(idCol).Records()
	values := df.Col(valueCol)

	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for i, key := range keys {
		v := values.Elem(i).Float()
		if math.IsNaN(v) {
			continue
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		sums[key] += v
		counts[key]++
	}

	ranked := make([]model.RankedTitle, 0, len(order))
	for _, key := range order {
		if counts[key] < minCount {
			continue
		}
		ranked = append(ranked, model.RankedTitle{
			Title: key,
			Count: counts[key],
			Mean:  sums[key] / float64(counts[key]),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Mean != ranked[j].Mean {
			return ranked[i].Mean > ranked[j].Mean
		}
		return ranked[i].Count > ranked[j].Count
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
