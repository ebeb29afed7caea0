package dataset

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// genreDelimiter separates values inside the multi-valued genres field.
const genreDelimiter = "|"

// explodeRatings flattens the multi-valued genre field: each source row is
// replicated once per genre with every other field duplicated, so per-genre
// grouping becomes a plain groupby. A row_id column keeps the link back to
// the source row; collapsing by it reconstructs the original genre sets.
//
// Inputs that already carry a pre-split genre column pass through the same
// path: a single-valued field explodes to itself.
func explodeRatings(path string, df dataframe.DataFrame) (*Dataset, error) {
	srcCol := ColGenres
	if hasColumn(df, ColGenre) {
		srcCol = ColGenre
	}

	keep := make([]string, 0, len(df.Names()))
	for _, name := range df.Names() {
		if name != srcCol {
			keep = append(keep, name)
		}
	}

	src := df.Col(srcCol).Records()
	kept := make(map[string][]string, len(keep))
	for _, name := range keep {
		kept[name] = df.Col(name).Records()
	}

	n := df.Nrow()
	rowIDs := make([]int, 0, n)
	genres := make([]string, 0, n)
	out := make(map[string][]string, len(keep))

	for i := 0; i < n; i++ {
		for _, part := range strings.Split(src[i], genreDelimiter) {
			rowIDs = append(rowIDs, i)
			genres = append(genres, strings.TrimSpace(part))
			for _, name := range keep {
				out[name] = append(out[name], kept[name][i])
			}
		}
	}

	cols := []series.Series{
		series.New(rowIDs, series.Int, ColRowID),
		series.New(genres, series.String, ColGenre),
	}
	for _, name := range keep {
		cols = append(cols, series.New(out[name], ratingColType(name), name))
	}

	exploded := dataframe.New(cols...)
	if exploded.Err != nil {
		return nil, fmt.Errorf("failed to build exploded ratings table: %w", exploded.Err)
	}

	return &Dataset{Kind: KindRatings, Path: path, Frame: exploded, RawRows: n}, nil
}

// ratingColType fixes the storage type per ratings column so later numeric
// predicates and means do not depend on per-file type sniffing.
func ratingColType(name string) series.Type {
	switch name {
	case ColAge, ColYear:
		return series.Int
	case ColRating:
		return series.Float
	default:
		return series.String
	}
}
