package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/haeyanglab/searep/internal/report"
	"github.com/haeyanglab/searep/internal/store"
)

func handleGetReport(logger *slog.Logger, svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reportID := chi.URLParam(r, "id")
		if reportID == "" {
			writeError(w, http.StatusBadRequest, msgReportIDMissing)
			return
		}

		rep, err := svc.Get(r.Context(), reportID)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgReportNotFound)
			return
		}
		if err != nil {
			logger.Error("report lookup failed", "report_id", reportID, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeData(w, http.StatusOK, rep)
	}
}
