package model

import "time"

// CategoryCount is one row of a category→count view (e.g. genre breakdown).
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryMean is one row of a category→mean view with its sample size.
type CategoryMean struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
}

// PeriodMean is one point of an ordered (period, mean) series.
type PeriodMean struct {
	Period int     `json:"period"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
}

// RankedTitle is one entry of a top-N ranking (title, mean, sample size).
type RankedTitle struct {
	Title string  `json:"title"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
}

// DeltaEntry holds one state's year-over-year complaint change.
type DeltaEntry struct {
	State     string `json:"state"`
	StateCode string `json:"state_code"`
	Current   int    `json:"current"`
	Previous  int    `json:"previous"`
	Delta     int    `json:"delta"`
}

// DeltaReport summarizes the period-over-period complaint movement for one
// year against the prior year. It exists only when a prior year exists; the
// first year of the series has no report, not a zeroed one.
type DeltaReport struct {
	Year        int          `json:"year"`
	PrevYear    int          `json:"prev_year"`
	TopGain     DeltaEntry   `json:"top_gain"`
	TopLoss     DeltaEntry   `json:"top_loss"`
	InboundPct  float64      `json:"inbound_pct"`  // % of states with delta > +threshold
	OutboundPct float64      `json:"outbound_pct"` // % of states with delta < -threshold
	Threshold   int          `json:"threshold"`
	Entries     []DeltaEntry `json:"entries"`
}

// StateComplaints is one row of the per-year complaints table. Losses is nil
// for states whose monetary figure is missing in the source.
type StateComplaints struct {
	State      string   `json:"state"`
	StateCode  string   `json:"state_code"`
	Complaints int      `json:"complaints"`
	Losses     *float64 `json:"losses_million,omitempty"`
}

// HeatmapCell is one cell of the state×year complaints heatmap series.
type HeatmapCell struct {
	State      string `json:"state"`
	Year       int    `json:"year"`
	Complaints int    `json:"complaints"`
}

// Snapshot is a persisted copy of a computed view.
type Snapshot struct {
	ID        string      `json:"id"`
	Dataset   string      `json:"dataset"`
	View      string      `json:"view"`
	Params    interface{} `json:"params,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
