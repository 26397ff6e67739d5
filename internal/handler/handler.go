package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/maxviazov/report-export-service/internal/service"
)

// Services groups the use cases exposed over HTTP.
type Services struct {
	Reports   service.ReportService
	Movies    service.MovieService
	Templates service.TemplateService
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, repo Pinger, svc Services, files FileNames) {
	h := NewHealthHandler(repo)

	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewMovieHandler(svc.Movies).Register(api)
		NewTemplateHandler(svc.Templates).Register(api)
		NewReportHandler(svc.Reports, files).Register(api)
	}
}
