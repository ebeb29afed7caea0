package handler

import (
	"fmt"

	"go-dashboard-pipeline/internal/dataset"
	"go-dashboard-pipeline/internal/pipeline"
)

func resolveAndGet(candidates []string) (*dataset.Dataset, error) {
	path, err := dataset.Resolve(cfg.DataDir, candidates)
	if err != nil {
		return nil, err
	}
	return datasets.Get(path)
}

// ComputeView evaluates one named dashboard view with default filter
// parameters. Snapshots and the scheduled snapshot job both go through
// here so that stored payloads match what the live endpoints serve.
func ComputeView(datasetName, view string, year int) (interface{}, error) {
	if year == 0 {
		year = dataset.LatestYear
	}

	switch datasetName {
	case "complaints":
		ds, err := resolveAndGet(dataset.ComplaintCandidates)
		if err != nil {
			return nil, err
		}
		switch view {
		case "map", "table":
			return pipeline.StateTable(ds.Frame, year)
		case "heatmap":
			return pipeline.Heatmap(ds.Frame), nil
		case "migration":
			rep, err := pipeline.ComplaintDelta(ds.Frame, year, cfg.MigrationThreshold)
			if err != nil {
				return nil, err
			}
			if rep == nil {
				return map[string]interface{}{"empty": true}, nil
			}
			return rep, nil
		}
	case "ratings":
		ds, err := resolveAndGet(dataset.RatingCandidates)
		if err != nil {
			return nil, err
		}
		switch view {
		case "genres":
			return pipeline.CategoryCounts(ds.Frame, dataset.ColGenre), nil
		case "satisfaction":
			return pipeline.CategoryMeans(ds.Frame, dataset.ColGenre, dataset.ColRating, cfg.MinRatings), nil
		case "trend":
			return pipeline.PeriodMeans(ds.Frame, dataset.ColYear, dataset.ColRating), nil
		case "top":
			return pipeline.TopRanked(ds.Frame, dataset.ColTitle, dataset.ColRating, cfg.MinRatings, cfg.TopLimit), nil
		}
	default:
		return nil, fmt.Errorf("unknown dataset %q", datasetName)
	}
	return nil, fmt.Errorf("unknown view %q for dataset %q", view, datasetName)
}
