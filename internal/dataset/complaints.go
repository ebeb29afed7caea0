package dataset

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ComplaintYears are the complaint-count columns carried by the dataset,
// newest first.
var ComplaintYears = []int{2024, 2023, 2022, 2021}

// LatestYear is the reporting year the source table is anchored on.
const LatestYear = 2024

// decayRate is the documented 5% annual decrease used to estimate complaint
// counts for years the source does not carry. The estimates are synthetic,
// not ground truth; replace with actual figures if they become available.
const decayRate = 0.05

// ComplaintsCol returns the column name holding the count for a year.
func ComplaintsCol(year int) string {
	return fmt.Sprintf("complaints_%d", year)
}

// stateRef is one entry of the static geographic reference list.
type stateRef struct {
	Name string
	Code string
}

// usStates lists all 50 states plus the District of Columbia. Every
// downstream aggregate gets full category coverage by joining loaded rows
// against this list, regardless of how many entities the input covers.
var usStates = []stateRef{
	{"Alabama", "AL"}, {"Alaska", "AK"}, {"Arizona", "AZ"}, {"Arkansas", "AR"},
	{"California", "CA"}, {"Colorado", "CO"}, {"Connecticut", "CT"},
	{"Delaware", "DE"}, {"District of Columbia", "DC"}, {"Florida", "FL"},
	{"Georgia", "GA"}, {"Hawaii", "HI"}, {"Idaho", "ID"}, {"Illinois", "IL"},
	{"Indiana", "IN"}, {"Iowa", "IA"}, {"Kansas", "KS"}, {"Kentucky", "KY"},
	{"Louisiana", "LA"}, {"Maine", "ME"}, {"Maryland", "MD"},
	{"Massachusetts", "MA"}, {"Michigan", "MI"}, {"Minnesota", "MN"},
	{"Mississippi", "MS"}, {"Missouri", "MO"}, {"Montana", "MT"},
	{"Nebraska", "NE"}, {"Nevada", "NV"}, {"New Hampshire", "NH"},
	{"New Jersey", "NJ"}, {"New Mexico", "NM"}, {"New York", "NY"},
	{"North Carolina", "NC"}, {"North Dakota", "ND"}, {"Ohio", "OH"},
	{"Oklahoma", "OK"}, {"Oregon", "OR"}, {"Pennsylvania", "PA"},
	{"Rhode Island", "RI"}, {"South Carolina", "SC"}, {"South Dakota", "SD"},
	{"Tennessee", "TN"}, {"Texas", "TX"}, {"Utah", "UT"}, {"Vermont", "VT"},
	{"Virginia", "VA"}, {"Washington", "WA"}, {"West Virginia", "WV"},
	{"Wisconsin", "WI"}, {"Wyoming", "WY"},
}

// StateCount is the number of geographic entities every complaints view
// covers (50 states + DC).
const StateCount = 51

// normalizeComplaints joins the loaded rows (typically a top-ten table)
// against the static state list. States absent from the input get zero for
// every count column and a missing loss value. When the input carries only
// the latest year, earlier years are estimated by applying the annual decay.
func normalizeComplaints(path string, df dataframe.DataFrame) (*Dataset, error) {
	rowFor := make(map[string]int, df.Nrow())
	for i, name := range df.Col(ColState).Records() {
		rowFor[name] = i
	}

	hasLosses := hasColumn(df, ColLosses)
	estimate := false
	for _, year := range ComplaintYears {
		if year != LatestYear && !hasColumn(df, ComplaintsCol(year)) {
			estimate = true
		}
	}

	states := make([]string, 0, len(usStates))
	codes := make([]string, 0, len(usStates))
	counts := make(map[int][]int, len(ComplaintYears))
	losses := make([]float64, 0, len(usStates))

	for _, ref := range usStates {
		states = append(states, ref.Name)
		codes = append(codes, ref.Code)

		idx, found := rowFor[ref.Name]

		latest := 0
		if found {
			latest = intAt(df, ComplaintsCol(LatestYear), idx)
		}
		for _, year := range ComplaintYears {
			v := 0
			switch {
			case !found:
				// zero-fill: entity not covered by the input
			case year == LatestYear:
				v = latest
			case estimate:
				v = EstimateHistory(latest, year)
			default:
				v = intAt(df, ComplaintsCol(year), idx)
			}
			counts[year] = append(counts[year], v)
		}

		loss := math.NaN()
		if found && hasLosses {
			loss = df.Col(ColLosses).Elem(idx).Float()
		}
		losses = append(losses, loss)
	}

	cols := []series.Series{
		series.New(states, series.String, ColState),
		series.New(codes, series.String, ColStateCode),
	}
	for _, year := range ComplaintYears {
		cols = append(cols, series.New(counts[year], series.Int, ComplaintsCol(year)))
	}
	cols = append(cols, series.New(losses, series.Float, ColLosses))

	full := dataframe.New(cols...)
	if full.Err != nil {
		return nil, fmt.Errorf("failed to build full state table: %w", full.Err)
	}

	return &Dataset{Kind: KindComplaints, Path: path, Frame: full, RawRows: df.Nrow()}, nil
}

// EstimateHistory projects a historical complaint count from the latest
// year's value using the uniform annual decay. Synthetic by construction.
func EstimateHistory(latest, year int) int {
	factor := math.Pow(1-decayRate, float64(LatestYear-year))
	return int(math.Round(float64(latest) * factor))
}

// intAt reads a cell as an int, treating missing values as zero.
func intAt(df dataframe.DataFrame, col string, row int) int {
	v := df.Col(col).Elem(row).Float()
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}
