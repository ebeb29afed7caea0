package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-dashboard-pipeline/internal/cache"
	"go-dashboard-pipeline/internal/config"
	"go-dashboard-pipeline/internal/dataset"
	"go-dashboard-pipeline/internal/model"
	"go-dashboard-pipeline/internal/pipeline"
	"go-dashboard-pipeline/internal/store"
	"go-dashboard-pipeline/pkg/utils"

	"github.com/google/uuid"
)

var (
	datasets *cache.DatasetCache
	cfg      *config.Config
)

// Setup wires the handlers to the shared dataset cache and config.
func Setup(c *cache.DatasetCache, conf *config.Config) {
	datasets = c
	cfg = conf
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// writeEmpty reports a recoverable no-data condition. The dashboard renders
// these as a "no qualifying data" indicator, so they are 200s, not errors.
func writeEmpty(w http.ResponseWriter, reason string) {
	writeJSON(w, map[string]interface{}{
		"empty":  true,
		"reason": reason,
	})
}

func writeLoadError(w http.ResponseWriter, err error) {
	var mf *model.MissingFileError
	var mc *model.MissingColumnError
	var us *model.UnknownSchemaError
	if errors.As(err, &mf) || errors.As(err, &mc) || errors.As(err, &us) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Error(w, "Failed to load dataset: "+err.Error(), http.StatusInternalServerError)
}

func loadDataset(w http.ResponseWriter, candidates []string) (*dataset.Dataset, bool) {
	path, err := dataset.Resolve(cfg.DataDir, candidates)
	if err != nil {
		store.SaveLoadError(cfg.DataDir, err)
		writeLoadError(w, err)
		return nil, false
	}
	ds, err := datasets.Get(path)
	if err != nil {
		store.SaveLoadError(path, err)
		writeLoadError(w, err)
		return nil, false
	}
	return ds, true
}

// multiValues returns nil when the key is absent and a non-nil (possibly
// empty) slice when it is present. The distinction matters: an explicitly
// empty selection must match zero rows, absence means "no filter".
func multiValues(q url.Values, key string) []string {
	raw, ok := q[key]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseFilter(q url.Values) model.FilterSpec {
	spec := model.FilterSpec{
		Genders:     multiValues(q, "gender"),
		Occupations: multiValues(q, "occupation"),
		Genres:      multiValues(q, "genre"),
	}
	if v := q.Get("age_min"); v != "" {
		n := utils.ParseIntDefault(v, 0)
		spec.AgeMin = &n
	}
	if v := q.Get("age_max"); v != "" {
		n := utils.ParseIntDefault(v, 0)
		spec.AgeMax = &n
	}
	return spec
}

func parseYear(q url.Values) (int, bool) {
	year := utils.ParseIntDefault(q.Get("year"), dataset.LatestYear)
	for _, y := range dataset.ComplaintYears {
		if y == year {
			return year, true
		}
	}
	return year, false
}

// ------------------- Complaints -------------------

// GetComplaintMap returns per-state complaint counts for one year
// @Summary State complaint map
// @Description Per-state complaint counts for a choropleth map
// @Tags complaints
// @Produce json
// @Param year query int false "Year (2021-2024, default 2024)"
// @Success 200 {object} map[string]interface{} "State counts"
// @Failure 400 {object} map[string]interface{} "Unknown year"
// @Failure 500 {object} map[string]interface{} "Dataset load failure"
// @Router /complaints/map [get]
func GetComplaintMap(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYear(r.URL.Query())
	if !ok {
		http.Error(w, "Unknown year", http.StatusBadRequest)
		return
	}
	ds, ok := loadDataset(w, dataset.ComplaintCandidates)
	if !ok {
		return
	}

	rows, err := pipeline.StateTable(ds.Frame, year)
	if err != nil {
		writeLoadError(w, err)
		return
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.StateCode] = row.Complaints
	}
	writeJSON(w, map[string]interface{}{
		"year":   year,
		"states": counts,
	})
}

// GetComplaintTable returns the sorted per-state complaint table
// @Summary State complaint table
// @Description Per-state complaints and losses, sorted descending
// @Tags complaints
// @Produce json
// @Param year query int false "Year (2021-2024, default 2024)"
// @Success 200 {object} map[string]interface{} "State table"
// @Failure 400 {object} map[string]interface{} "Unknown year"
// @Failure 500 {object} map[string]interface{} "Dataset load failure"
// @Router /complaints/table [get]
func GetComplaintTable(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYear(r.URL.Query())
	if !ok {
		http.Error(w, "Unknown year", http.StatusBadRequest)
		return
	}
	ds, ok := loadDataset(w, dataset.ComplaintCandidates)
	if !ok {
		return
	}

	rows, err := pipeline.StateTable(ds.Frame, year)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"year":  year,
		"rows":  rows,
		"count": len(rows),
	})
}

// GetComplaintHeatmap returns the state-by-year complaint series
// @Summary Complaint heatmap
// @Description Long-form (state, year, complaints) series across all years
// @Tags complaints
// @Produce json
// @Success 200 {object} map[string]interface{} "Heatmap cells"
// @Failure 500 {object} map[string]interface{} "Dataset load failure"
// @Router /complaints/heatmap [get]
func GetComplaintHeatmap(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, dataset.ComplaintCandidates)
	if !ok {
		return
	}

	cells := pipeline.Heatmap(ds.Frame)
	writeJSON(w, map[string]interface{}{
		"cells": cells,
		"count": len(cells),
	})
}

// GetComplaintMigration returns the year-over-year complaint delta view
// @Summary Complaint migration
// @Description Year-over-year complaint deltas with top gain/loss states
// @Tags complaints
// @Produce json
// @Param year query int false "Year (2022-2024, default 2024)"
// @Param threshold query int false "Delta threshold (default 5000)"
// @Success 200 {object} map[string]interface{} "Delta report, or empty for the first year"
// @Failure 400 {object} map[string]interface{} "Unknown year"
// @Failure 500 {object} map[string]interface{} "Dataset load failure"
// @Router /complaints/migration [get]
func GetComplaintMigration(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, ok := parseYear(q)
	if !ok {
		http.Error(w, "Unknown year", http.StatusBadRequest)
		return
	}
	threshold := utils.ParseIntDefault(q.Get("threshold"), cfg.MigrationThreshold)

	ds, ok := loadDataset(w, dataset.ComplaintCandidates)
	if !ok {
		return
	}

	rep, err := pipeline.ComplaintDelta(ds.Frame, year, threshold)
	if err != nil {
		writeLoadError(w, err)
		return
	}
	if rep == nil {
		writeEmpty(w, "No prior-year data for the selected year")
		return
	}
	writeJSON(w, rep)
}

// ------------------- Ratings -------------------

// GetGenreCounts returns rating counts per genre under the active filters
// @Summary Genre counts
// @Description Number of ratings per genre for the filtered view
// @Tags ratings
// @Produce json
// @Param age_min query int false "Minimum age (inclusive)"
// @Param age_max query int false "Maximum age (inclusive)"
// @Param gender query []string false "Gender selection" collectionFormat(multi)
// @Param occupation query []string false "Occupation selection" collectionFormat(multi)
// @Param genre query []string false "Genre selection" collectionFormat(multi)
// @Success 200 {object} map[string]interface{} "Genre counts, or empty"
// @Failure 500 {object} map[string]interface{} "Dataset load failure"
// @Router /ratings/genres [get]
func GetGenreCounts(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, dataset.RatingCandidates)
	if !ok {
		return
	}

	filtered := pipeline.ApplyFilter(ds.Frame, parseFilter(r.URL.Query()))
	if filtered.Nrow() == 0 {
		writeEmpty(w, "No ratings match the current filters")
		return
	}
	counts := pipeline.CategoryCounts(filtered, dataset.ColGenre)
	writeJSON(w, map[string]interface{}{
		"genres": counts,
		"total":  filtered.Nrow(),
	})
}

// GetSatisfaction returns mean rating per genre above a sample floor
// @Summary Genre satisfaction
// @Description Mean rating per genre, excluding genres below min_ratings
// @Tags ratings
// @Produce json
// @Param min_ratings query int false "Minimum ratings per genre (default 50)"
// @Param age_min query int false "Minimum age (inclusive)"
// @Param age_max query int false "Maximum age (inclusive)"
// @Param gender query []string false "Gender selection" collectionFormat(multi)
// @Param occupation query []string false "Occupation selection" collectionFormat(multi)
// @Param genre query []string false "Genre selection" collectionFormat(multi)
// @Success 200 {object} map[string]interface{} "Genre means, or empty"
// @Failure 500 {object} map[string]interface{} "Dataset load failure"
// @Router /ratings/satisfaction [get]
func GetSatisfaction(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	minRatings := utils.ParseIntDefault(q.Get("min_ratings"), cfg.MinRatings)

	ds, ok := loadDataset(w, dataset.RatingCandidates)
	if !ok {
		return
	}

	filtered := pipeline.ApplyFilter(ds.Frame, parseFilter(q))
	if filtered.Nrow() == 0 {
		writeEmpty(w, "No ratings match the current filters")
		return
	}
	means := pipeline.CategoryMeans(filtered, dataset.ColGenre, dataset.ColRating, minRatings)
	if len(means) == 0 {
		writeEmpty(w, "No genre meets the minimum rating count")
		return
	}
	writeJSON(w, map[string]interface{}{
		"min_ratings": minRatings,
		"genres":      means,
	})
}

// GetRatingTrend returns the mean rating per year with best/worst markers
// @Summary Rating trend
// @Description Mean rating per release year for the filtered view
// @Tags ratings
// @Produce json
// @Param age_min query int false "Minimum age (inclusive)"
// @Param age_max query int false "Maximum age (inclusive)"
// @Param gender query []string false "Gender selection" collectionFormat(multi)
// @Param occupation query []string false "Occupation selection" collectionFormat(multi)
// @Param genre query []string false "Genre selection" collectionFormat(multi)
// @Success 200 {object} map[string]interface{} "Trend series, or empty"
// @Failure 500 {object} map[string]interface{} "Dataset load failure"
// @Router /ratings/trend [get]
func GetRatingTrend(w http.ResponseWriter, r *http.Request) {
	ds, ok := loadDataset(w, dataset.RatingCandidates)
	if !ok {
		return
	}

	filtered := pipeline.ApplyFilter(ds.Frame, parseFilter(r.URL.Query()))
	series := pipeline.PeriodMeans(filtered, dataset.ColYear, dataset.ColRating)
	if len(series) == 0 {
		writeEmpty(w, "No ratings match the current filters")
		return
	}

	resp := map[string]interface{}{"series": series}
	if best, worst, ok := pipeline.BestWorstPeriods(series); ok {
		resp["best"] = best
		resp["worst"] = worst
	}
	writeJSON(w, resp)
}

// GetTopTitles returns the best-rated titles above a sample floor
// @Summary Top titles
// @Description Top-N titles by mean rating among titles with at least min_count ratings
// @Tags ratings
// @Produce json
// @Param min_count query int false "Minimum ratings per title (default 50)"
// @Param limit query int false "Number of titles (default 5)"
// @Param age_min query int false "Minimum age (inclusive)"
// @Param age_max query int false "Maximum age (inclusive)"
// @Param gender query []string false "Gender selection" collectionFormat(multi)
// @Param occupation query []string false "Occupation selection" collectionFormat(multi)
// @Param genre query []string false "Genre selection" collectionFormat(multi)
// @Success 200 {object} map[string]interface{} "Ranked titles, or empty"
// @Failure 500 {object} map[string]interface{} "Dataset load failure"
// @Router /ratings/top [get]
func GetTopTitles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	minCount := utils.ParseIntDefault(q.Get("min_count"), cfg.MinRatings)
	limit := utils.ParseIntDefault(q.Get("limit"), cfg.TopLimit)

	ds, ok := loadDataset(w, dataset.RatingCandidates)
	if !ok {
		return
	}

	filtered := pipeline.ApplyFilter(ds.Frame, parseFilter(q))
	ranked := pipeline.TopRanked(filtered, dataset.ColTitle, dataset.ColRating, minCount, limit)
	if len(ranked) == 0 {
		writeEmpty(w, "No title meets the minimum rating count")
		return
	}
	writeJSON(w, map[string]interface{}{
		"min_count": minCount,
		"limit":     limit,
		"titles":    ranked,
	})
}

// ------------------- Datasets -------------------

// ListDatasets reports identity and coverage of the loaded datasets
// @Summary List datasets
// @Description Identity and row coverage of each resolvable dataset
// @Tags datasets
// @Produce json
// @Success 200 {object} map[string]interface{} "Dataset summaries"
// @Router /datasets [get]
func ListDatasets(w http.ResponseWriter, r *http.Request) {
	summaries := []map[string]interface{}{}
	for _, candidates := range [][]string{dataset.ComplaintCandidates, dataset.RatingCandidates} {
		path, err := dataset.Resolve(cfg.DataDir, candidates)
		if err != nil {
			summaries = append(summaries, map[string]interface{}{
				"candidates": candidates,
				"error":      err.Error(),
			})
			continue
		}
		ds, err := datasets.Get(path)
		if err != nil {
			summaries = append(summaries, map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			continue
		}
		summaries = append(summaries, map[string]interface{}{
			"kind":     ds.Kind,
			"path":     ds.Path,
			"raw_rows": ds.RawRows,
			"rows":     ds.Frame.Nrow(),
			"columns":  ds.Frame.Names(),
		})
	}
	writeJSON(w, map[string]interface{}{
		"datasets": summaries,
		"cached":   datasets.Len(),
	})
}

// ------------------- Snapshots -------------------

type snapshotRequest struct {
	Dataset string `json:"dataset"`
	View    string `json:"view"`
	Year    int    `json:"year,omitempty"`
}

// CreateSnapshot computes a view and persists the result
// @Summary Create snapshot
// @Description Compute one dashboard view with default parameters and persist it
// @Tags snapshots
// @Accept json
// @Produce json
// @Param snapshot body snapshotRequest true "Dataset and view to snapshot"
// @Success 200 {object} model.Snapshot "Stored snapshot"
// @Failure 400 {object} map[string]interface{} "Unknown dataset or view"
// @Failure 500 {object} map[string]interface{} "Compute or store failure"
// @Router /snapshots [post]
func CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	var req snapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	payload, err := ComputeView(req.Dataset, req.View, req.Year)
	if err != nil {
		var mf *model.MissingFileError
		if errors.As(err, &mf) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := uuid.New().String()
	if err := store.SaveSnapshot(id, req.Dataset, req.View, req, payload); err != nil {
		http.Error(w, "Failed to save snapshot", http.StatusInternalServerError)
		return
	}

	writeJSON(w, model.Snapshot{
		ID:        id,
		Dataset:   req.Dataset,
		View:      req.View,
		Params:    req,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	})
}

// ListSnapshots returns stored snapshots, newest first
// @Summary List snapshots
// @Description Stored view snapshots, newest first
// @Tags snapshots
// @Produce json
// @Param limit query int false "Maximum snapshots to return (default 20)"
// @Success 200 {object} map[string]interface{} "Snapshots"
// @Failure 500 {object} map[string]interface{} "Store failure"
// @Router /snapshots [get]
func ListSnapshots(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseIntDefault(r.URL.Query().Get("limit"), 20)
	snaps, err := store.ListSnapshots(limit)
	if err != nil {
		http.Error(w, "Failed to fetch snapshots", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{
		"snapshots": snaps,
		"count":     len(snaps),
	})
}

// GetSnapshotByID returns one stored snapshot
// @Summary Get snapshot
// @Description One stored snapshot by ID
// @Tags snapshots
// @Produce json
// @Param id path string true "Snapshot ID"
// @Success 200 {object} model.Snapshot "Snapshot"
// @Failure 404 {object} map[string]interface{} "Snapshot not found"
// @Router /snapshots/{id} [get]
func GetSnapshotByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/snapshots/")
	if id == "" {
		http.Error(w, "Snapshot ID is required", http.StatusBadRequest)
		return
	}
	snap, err := store.GetSnapshot(id)
	if err != nil {
		http.Error(w, "Snapshot not found", http.StatusNotFound)
		return
	}
	writeJSON(w, snap)
}
