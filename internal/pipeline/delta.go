package pipeline

import (
	"fmt"
	"math"
	"sort"

	"go-dashboard-pipeline/internal/dataset"
	"go-dashboard-pipeline/internal/model"

	"github.com/go-gota/gota/dataframe"
)

// ComplaintDelta computes the year-over-year complaint movement for every
// state: per-state difference against the prior year, the states with the
// largest gain and loss (ties broken by first occurrence in table order) and
// the fraction of states whose delta exceeds ±threshold.
//
// The first year of the series has no prior period; the report is nil then,
// by design, rather than a zeroed placeholder.
func ComplaintDelta(df dataframe.DataFrame, year, threshold int) (*model.DeltaReport, error) {
	curCol := dataset.ComplaintsCol(year)
	if !hasColumn(df, curCol) {
		return nil, fmt.Errorf("no complaint counts for year %d", year)
	}
	prevCol := dataset.ComplaintsCol(year - 1)
	if !hasColumn(df, prevCol) {
		return nil, nil
	}

	states := df.Col(dataset.ColState).Records()
	codes := df.Col(dataset.ColStateCode).Records()
	current := df.Col(curCol).Float()
	previous := df.Col(prevCol).Float()

	entries := make([]model.DeltaEntry, len(states))
	gainIdx, lossIdx := 0, 0
	inbound, outbound := 0, 0

	for i := range states {
		cur := int(current[i])
		prev := int(previous[i])
		delta := cur - prev
		entries[i] = model.DeltaEntry{
			State:     states[i],
			StateCode: codes[i],
			Current:   cur,
			Previous:  prev,
			Delta:     delta,
		}
		if delta > entries[gainIdx].Delta {
			gainIdx = i
		}
		if delta < entries[lossIdx].Delta {
			lossIdx = i
		}
		if delta > threshold {
			inbound++
		}
		if delta < -threshold {
			outbound++
		}
	}

	total := float64(len(entries))
	return &model.DeltaReport{
		Year:        year,
		PrevYear:    year - 1,
		TopGain:     entries[gainIdx],
		TopLoss:     entries[lossIdx],
		InboundPct:  float64(inbound) / total * 100,
		OutboundPct: float64(outbound) / total * 100,
		Threshold:   threshold,
		Entries:     entries,
	}, nil
}

// StateTable returns the per-state complaint counts for one year, sorted
// descending by count. States whose monetary figure is missing carry a nil
// Losses.
func StateTable(df dataframe.DataFrame, year int) ([]model.StateComplaints, error) {
	col := dataset.ComplaintsCol(year)
	if !hasColumn(df, col) {
		return nil, fmt.Errorf("no complaint counts for year %d", year)
	}

	states := df.Col(dataset.ColState).Records()
	codes := df.Col(dataset.ColStateCode).Records()
	counts := df.Col(col).Float()
	losses := df.Col(dataset.ColLosses)

	out := make([]model.StateComplaints, len(states))
	for i := range states {
		row := model.StateComplaints{
			State:      states[i],
			StateCode:  codes[i],
			Complaints: int(counts[i]),
		}
		if v := losses.Elem(i).Float(); !math.IsNaN(v) {
			loss := v
			row.Losses = &loss
		}
		out[i] = row
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Complaints > out[j].Complaints })
	return out, nil
}

// Heatmap flattens the wide per-year columns into the long (state, year,
// complaints) form the heatmap consumes, oldest year first within a state.
func Heatmap(df dataframe.DataFrame) []model.HeatmapCell {
	states := df.Col(dataset.ColState).Records()

	years := make([]int, len(dataset.ComplaintYears))
	copy(years, dataset.ComplaintYears)
	sort.Ints(years)

	cells := make([]model.HeatmapCell, 0, len(states)*len(years))
	for _, year := range years {
		counts := df.Col(dataset.ComplaintsCol(year)).Float()
		for i, state := range states {
			cells = append(cells, model.HeatmapCell{
				State:      state,
				Year:       year,
				Complaints: int(counts[i]),
			})
		}
	}
	return cells
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
