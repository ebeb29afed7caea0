package dataset

import (
	"go-dashboard-pipeline/internal/model"

	"github.com/go-gota/gota/dataframe"
)

// Kind tags which of the two supported dashboard schemas a table holds.
type Kind string

const (
	// KindComplaints is the geographic/time-series schema: state, state_code,
	// per-year complaint counts and one monetary column.
	KindComplaints Kind = "complaints"

	// KindRatings is the demographic/ratings schema: age, gender, occupation,
	// genre(s), year, rating, title.
	KindRatings Kind = "ratings"
)

// Column names that are part of the loader contract.
const (
	ColState     = "state"
	ColStateCode = "state_code"
	ColLosses    = "losses_2024_million"

	ColAge        = "age"
	ColGender     = "gender"
	ColOccupation = "occupation"
	ColGenres     = "genres" // pipe-delimited multi-value form
	ColGenre      = "genre"  // pre-split single-value form
	ColYear       = "year"
	ColRating     = "rating"
	ColTitle      = "title"

	// ColRowID is added by the loader: the index of the source row a record
	// was exploded from. It ties exploded rows back to their origin.
	ColRowID = "row_id"
)

// DetectKind inspects the column set of a freshly read table and returns the
// schema it matches. The choice is made once, up front, and the matching
// normalization routine is dispatched on the returned tag; columns are never
// probed ad hoc later in the pipeline.
func DetectKind(path string, df dataframe.DataFrame) (Kind, error) {
	switch {
	case hasColumn(df, ColState):
		for _, col := range []string{ColStateCode, ComplaintsCol(LatestYear)} {
			if !hasColumn(df, col) {
				return "", &model.MissingColumnError{Dataset: string(KindComplaints), Columns: []string{col}}
			}
		}
		return KindComplaints, nil

	case hasColumn(df, ColRating):
		if !hasColumn(df, ColGenre) && !hasColumn(df, ColGenres) {
			return "", &model.MissingColumnError{Dataset: string(KindRatings), Columns: []string{ColGenres, ColGenre}}
		}
		for _, col := range []string{ColAge, ColGender, ColOccupation, ColYear, ColTitle} {
			if !hasColumn(df, col) {
				return "", &model.MissingColumnError{Dataset: string(KindRatings), Columns: []string{col}}
			}
		}
		return KindRatings, nil

	default:
		return "", &model.UnknownSchemaError{Path: path, Headers: df.Names()}
	}
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
