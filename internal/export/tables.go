package export

import (
	"strconv"

	"go-dashboard-pipeline/internal/model"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// StateTable flattens per-state complaint rows for the map/table views.
func StateTable(name string, rows []model.StateComplaints) Table {
	t := Table{
		Name:    name,
		Columns: []string{"state", "state_code", "complaints", "losses_million"},
	}
	for _, r := range rows {
		losses := ""
		if r.Losses != nil {
			losses = formatFloat(*r.Losses)
		}
		t.Rows = append(t.Rows, []string{
			r.State, r.StateCode, strconv.Itoa(r.Complaints), losses,
		})
	}
	return t
}

// CategoryCounts flattens count-per-category results, e.g. ratings per genre.
func CategoryCounts(name, category string, counts []model.CategoryCount) Table {
	t := Table{
		Name:    name,
		Columns: []string{category, "count"},
	}
	for _, c := range counts {
		t.Rows = append(t.Rows, []string{c.Category, strconv.Itoa(c.Count)})
	}
	return t
}

// CategoryMeans flattens mean-per-category results, e.g. satisfaction by occupation.
func CategoryMeans(name, category string, means []model.CategoryMean) Table {
	t := Table{
		Name:    name,
		Columns: []string{category, "mean", "count"},
	}
	for _, m := range means {
		t.Rows = append(t.Rows, []string{m.Category, formatFloat(m.Mean), strconv.Itoa(m.Count)})
	}
	return t
}

// PeriodMeans flattens a time series of period means, e.g. mean rating by year.
func PeriodMeans(name string, means []model.PeriodMean) Table {
	t := Table{
		Name:    name,
		Columns: []string{"period", "mean", "count"},
	}
	for _, m := range means {
		t.Rows = append(t.Rows, []string{strconv.Itoa(m.Period), formatFloat(m.Mean), strconv.Itoa(m.Count)})
	}
	return t
}

// RankedTitles flattens a top-N ranking.
func RankedTitles(name string, ranked []model.RankedTitle) Table {
	t := Table{
		Name:    name,
		Columns: []string{"rank", "title", "mean", "count"},
	}
	for i, r := range ranked {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1), r.Title, formatFloat(r.Mean), strconv.Itoa(r.Count),
		})
	}
	return t
}

// DeltaReport flattens year-over-year complaint deltas.
func DeltaReport(name string, rep *model.DeltaReport) Table {
	t := Table{
		Name:    name,
		Columns: []string{"state", "state_code", "current", "previous", "delta"},
	}
	if rep == nil {
		return t
	}
	for _, e := range rep.Entries {
		t.Rows = append(t.Rows, []string{
			e.State, e.StateCode,
			strconv.Itoa(e.Current), strconv.Itoa(e.Previous),
			strconv.Itoa(e.Delta),
		})
	}
	return t
}

// HeatmapCells flattens the state-by-year heatmap grid.
func HeatmapCells(name string, cells []model.HeatmapCell) Table {
	t := Table{
		Name:    name,
		Columns: []string{"state", "year", "complaints"},
	}
	for _, c := range cells {
		t.Rows = append(t.Rows, []string{c.State, strconv.Itoa(c.Year), strconv.Itoa(c.Complaints)})
	}
	return t
}
