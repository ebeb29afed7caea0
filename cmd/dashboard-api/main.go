package main

import (
	"context"
	"fmt"

	"go-dashboard-pipeline/internal/api"
	"go-dashboard-pipeline/internal/api/handler"
	"go-dashboard-pipeline/internal/cache"
	"go-dashboard-pipeline/internal/config"
	"go-dashboard-pipeline/internal/store"
	"go-dashboard-pipeline/pkg/router"

	_ "go-dashboard-pipeline/docs"

	"github.com/google/uuid"
	"github.com/robfig/cron"
)

// @title Dashboard Pipeline API
// @version 1.0
// @description Cybercrime complaint and movie rating dashboard views
// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg := config.Load()

	// Init DB
	if err := store.InitDB(cfg.SnapshotDB); err != nil {
		panic(err)
	}

	// Dataset cache with file-watch invalidation
	datasets := cache.New()
	if w, err := cache.NewWatcher(cfg.DataDir, datasets); err != nil {
		fmt.Printf("⚠️ Dataset watcher disabled: %v\n", err)
	} else {
		go w.Run(context.Background())
	}

	handler.Setup(datasets, cfg)

	// Scheduled view snapshots
	if cfg.SnapshotCron != "" {
		c := cron.New()
		err := c.AddFunc(cfg.SnapshotCron, snapshotAll)
		if err != nil {
			fmt.Printf("⚠️ Invalid snapshot schedule %q: %v\n", cfg.SnapshotCron, err)
		} else {
			c.Start()
			fmt.Printf("⏰ Snapshot schedule active: %s\n", cfg.SnapshotCron)
		}
	}

	// Create router and register API routes
	r := router.New()
	api.RegisterRoutes(r)

	r.Start(cfg.Addr)
}

var snapshotViews = map[string][]string{
	"complaints": {"table", "heatmap", "migration"},
	"ratings":    {"genres", "satisfaction", "trend", "top"},
}

func snapshotAll() {
	for ds, views := range snapshotViews {
		for _, view := range views {
			payload, err := handler.ComputeView(ds, view, 0)
			if err != nil {
				fmt.Printf("❌ Snapshot %s/%s failed: %v\n", ds, view, err)
				continue
			}
			id := uuid.New().String()
			if err := store.SaveSnapshot(id, ds, view, nil, payload); err != nil {
				fmt.Printf("❌ Snapshot %s/%s not saved: %v\n", ds, view, err)
				continue
			}
			fmt.Printf("💾 Snapshot %s/%s saved as %s\n", ds, view, id)
		}
	}
}
