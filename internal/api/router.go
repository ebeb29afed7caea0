package api

import (
	"go-dashboard-pipeline/internal/api/handler"
	"go-dashboard-pipeline/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(r *router.Router) {
	r.GET("/api/v1/datasets", handler.ListDatasets)

	r.GET("/api/v1/complaints/map", handler.GetComplaintMap)
	r.GET("/api/v1/complaints/table", handler.GetComplaintTable)
	r.GET("/api/v1/complaints/heatmap", handler.GetComplaintHeatmap)
	r.GET("/api/v1/complaints/migration", handler.GetComplaintMigration)

	r.GET("/api/v1/ratings/genres", handler.GetGenreCounts)
	r.GET("/api/v1/ratings/satisfaction", handler.GetSatisfaction)
	r.GET("/api/v1/ratings/trend", handler.GetRatingTrend)
	r.GET("/api/v1/ratings/top", handler.GetTopTitles)

	r.POST("/api/v1/snapshots", handler.CreateSnapshot)
	r.GET("/api/v1/snapshots", handler.ListSnapshots)
	r.GET("/api/v1/snapshots/*", handler.GetSnapshotByID)

	r.Mount("/swagger/", httpSwagger.WrapHandler)
}
