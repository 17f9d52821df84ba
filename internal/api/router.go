package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-data-processor/docs"
	"go-data-processor/internal/api/handler"
	"go-data-processor/pkg/router"
)

// RegisterRoutes wires the run-history endpoints.
func RegisterRoutes(r *router.Router) {
	r.POST("/api/v1/runs", handler.TriggerRun)
	r.GET("/api/v1/runs", handler.ListRuns)
	// More specific routes first
	r.GET("/api/v1/runs/*/errors", handler.GetRunErrors)
	r.GET("/api/v1/runs/*/report", handler.GetRunReport)
	// Generic run route last
	r.GET("/api/v1/runs/*", handler.GetRun)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
