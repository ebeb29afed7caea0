// Package pipeline implements the filter-and-aggregate stage that turns a
// loaded dataset into the derived views the dashboard renders. Every function
// takes the table by value and returns fresh results; the loaded frame is
// shared, immutable state and is never mutated here.
package pipeline

import (
	"go-dashboard-pipeline/internal/dataset"
	"go-dashboard-pipeline/internal/model"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ApplyFilter returns the subset of the exploded ratings table satisfying
// every predicate in spec. Predicates compose with AND; both bounds of the
// age range are inclusive.
//
// A set-membership predicate that was provided but is empty selects nothing:
// the user deselected every option, which is an empty result, not "no
// filter". Only nil predicates are skipped.
func ApplyFilter(df dataframe.DataFrame, spec model.FilterSpec) dataframe.DataFrame {
	if spec.IsZero() {
		return df
	}

	for _, selected := range [][]string{spec.Genders, spec.Occupations, spec.Genres} {
		if selected != nil && len(selected) == 0 {
			return df.Subset([]int{})
		}
	}

	var filters []dataframe.F
	if spec.AgeMin != nil {
		filters = append(filters, dataframe.F{Colname: dataset.ColAge, Comparator: series.GreaterEq, Comparando: *spec.AgeMin})
	}
	if spec.AgeMax != nil {
		filters = append(filters, dataframe.F{Colname: dataset.ColAge, Comparator: series.LessEq, Comparando: *spec.AgeMax})
	}
	if spec.Genders != nil {
		filters = append(filters, dataframe.F{Colname: dataset.ColGender, Comparator: series.In, Comparando: spec.Genders})
	}
	if spec.Occupations != nil {
		filters = append(filters, dataframe.F{Colname: dataset.ColOccupation, Comparator: series.In, Comparando: spec.Occupations})
	}
	if spec.Genres != nil {
		filters = append(filters, dataframe.F{Colname: dataset.ColGenre, Comparator: series.In, Comparando: spec.Genres})
	}

	return df.FilterAggregation(dataframe.And, filters...)
}
