package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go-dashboard-pipeline/internal/config"
	"go-dashboard-pipeline/internal/dataset"
	"go-dashboard-pipeline/internal/export"
	"go-dashboard-pipeline/internal/model"
	"go-dashboard-pipeline/internal/pipeline"
	"go-dashboard-pipeline/pkg/utils"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	dataDir := flag.String("data", cfg.DataDir, "directory holding the dataset CSV files")
	year := flag.Int("year", dataset.LatestYear, "complaint year to report on")
	minRatings := flag.Int("min-ratings", cfg.MinRatings, "minimum ratings per genre/title")
	limit := flag.Int("limit", cfg.TopLimit, "number of top titles")
	ageMin := flag.Int("age-min", -1, "minimum viewer age (inclusive, -1 = no filter)")
	ageMax := flag.Int("age-max", -1, "maximum viewer age (inclusive, -1 = no filter)")
	genders := flag.String("gender", "", "comma-separated gender selection")
	occupations := flag.String("occupation", "", "comma-separated occupation selection")
	genres := flag.String("genre", "", "comma-separated genre selection")
	exportTo := flag.String("export", "", "export backend: csv, xlsx or postgres")
	exportDir := flag.String("out", cfg.ExportDir, "directory for csv/xlsx exports")
	flag.Parse()

	fmt.Println("------------------- Loading Datasets -------------------")

	var complaints, ratings *dataset.Dataset
	var g errgroup.Group
	g.Go(func() error {
		ds, err := dataset.LoadDir(*dataDir, dataset.ComplaintCandidates)
		complaints = ds
		return err
	})
	g.Go(func() error {
		ds, err := dataset.LoadDir(*dataDir, dataset.RatingCandidates)
		ratings = ds
		return err
	})
	if err := g.Wait(); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	spec := model.FilterSpec{
		Genders:     splitList(*genders),
		Occupations: splitList(*occupations),
		Genres:      splitList(*genres),
	}
	if *ageMin >= 0 {
		spec.AgeMin = ageMin
	}
	if *ageMax >= 0 {
		spec.AgeMax = ageMax
	}

	tables := []export.Table{}

	fmt.Println("------------------- Cybercrime Complaints -------------------")

	states, err := pipeline.StateTable(complaints.Frame, *year)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("📊 Complaints by state, %d (top %d of %d):\n", *year, top(len(states), 10), len(states))
	for _, row := range states[:top(len(states), 10)] {
		line := fmt.Sprintf("   %-20s %s", row.State, utils.FormatCount(row.Complaints))
		if row.Losses != nil {
			line += fmt.Sprintf("  ($%s lost)", utils.FormatNumber(*row.Losses*1e6))
		}
		fmt.Println(line)
	}
	tables = append(tables, export.StateTable(fmt.Sprintf("complaints_%d", *year), states))

	rep, err := pipeline.ComplaintDelta(complaints.Frame, *year, cfg.MigrationThreshold)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if rep == nil {
		fmt.Printf("ℹ️ No prior-year data for %d, skipping migration view\n", *year)
	} else {
		fmt.Printf("📈 Top gain %d→%d: %s (%+d)\n", rep.PrevYear, rep.Year, rep.TopGain.State, rep.TopGain.Delta)
		fmt.Printf("📉 Top loss %d→%d: %s (%+d)\n", rep.PrevYear, rep.Year, rep.TopLoss.State, rep.TopLoss.Delta)
		fmt.Printf("🧭 Above +%d: %.1f%% of states, below -%d: %.1f%%\n",
			rep.Threshold, rep.InboundPct, rep.Threshold, rep.OutboundPct)
		tables = append(tables, export.DeltaReport(fmt.Sprintf("migration_%d", rep.Year), rep))
	}
	tables = append(tables, export.HeatmapCells("complaints_heatmap", pipeline.Heatmap(complaints.Frame)))

	fmt.Println("------------------- Movie Ratings -------------------")

	filtered := pipeline.ApplyFilter(ratings.Frame, spec)
	fmt.Printf("🔍 Filters keep %s of %s rating rows\n",
		utils.FormatCount(filtered.Nrow()), utils.FormatCount(ratings.Frame.Nrow()))

	counts := pipeline.CategoryCounts(filtered, dataset.ColGenre)
	if len(counts) == 0 {
		fmt.Println("ℹ️ No ratings match the current filters")
	} else {
		fmt.Printf("🎬 Most rated genre: %s (%s ratings)\n",
			counts[0].Category, utils.FormatCount(counts[0].Count))
		tables = append(tables, export.CategoryCounts("genre_counts", "genre", counts))
	}

	means := pipeline.CategoryMeans(filtered, dataset.ColGenre, dataset.ColRating, *minRatings)
	if len(means) == 0 {
		fmt.Printf("ℹ️ No genre meets the %d-rating floor\n", *minRatings)
	} else {
		fmt.Printf("⭐ Best genre (≥%d ratings): %s, mean %.2f from %s ratings\n",
			*minRatings, means[0].Category, means[0].Mean, utils.FormatCount(means[0].Count))
		tables = append(tables, export.CategoryMeans("genre_satisfaction", "genre", means))
	}

	series := pipeline.PeriodMeans(filtered, dataset.ColYear, dataset.ColRating)
	if best, worst, ok := pipeline.BestWorstPeriods(series); ok {
		fmt.Printf("📅 Best year %d (mean %.2f), worst year %d (mean %.2f)\n",
			best.Period, best.Mean, worst.Period, worst.Mean)
		tables = append(tables, export.PeriodMeans("rating_trend", series))
	}

	for _, floor := range []int{*minRatings, 150} {
		ranked := pipeline.TopRanked(filtered, dataset.ColTitle, dataset.ColRating, floor, *limit)
		if len(ranked) == 0 {
			fmt.Printf("ℹ️ No title reaches %d ratings\n", floor)
			continue
		}
		fmt.Printf("🏆 Top %d titles (≥%d ratings):\n", len(ranked), floor)
		for i, t := range ranked {
			fmt.Printf("   %d. %s: %.2f from %s ratings\n", i+1, t.Title, t.Mean, utils.FormatCount(t.Count))
		}
		tables = append(tables, export.RankedTitles(fmt.Sprintf("top_titles_min%d", floor), ranked))
	}

	if *exportTo != "" {
		if err := runExport(*exportTo, *exportDir, cfg.PostgresDSN, tables); err != nil {
			fmt.Printf("❌ Export failed: %v\n", err)
			os.Exit(1)
		}
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func top(n, max int) int {
	if n < max {
		return n
	}
	return max
}

func runExport(backend, dir, dsn string, tables []export.Table) error {
	var w export.Writer
	var err error
	switch backend {
	case "csv":
		w, err = export.NewCSVWriter(dir)
	case "xlsx":
		w, err = export.NewXLSXWriter(dir, "dashboard")
	case "postgres":
		if dsn == "" {
			return fmt.Errorf("postgres export needs DASHBOARD_POSTGRES_DSN")
		}
		w, err = export.NewPostgresWriter(dsn)
	default:
		return fmt.Errorf("unknown export backend %q", backend)
	}
	if err != nil {
		return err
	}
	defer w.Close()

	for _, t := range tables {
		if err := w.Write(t); err != nil {
			return err
		}
	}
	return nil
}
