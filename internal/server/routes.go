package server

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"

	"github.com/haeyanglab/searep/internal/report"
)

func addRoutes(r chi.Router, logger *slog.Logger, svc *report.Service, db *sql.DB) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("해양레저 자율신고 API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/report/submit", handleSubmitReport(logger, svc))
		r.Get("/report/{id}", handleGetReport(logger, svc))
		r.Post("/safety/analysis", handleAnalysis(logger, svc))
	})
}
