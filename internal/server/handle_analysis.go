package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/haeyanglab/searep/internal/report"
)

func handleAnalysis(logger *slog.Logger, svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req report.AnalysisRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidAnalysis)
			return
		}

		res, err := svc.Analyze(req)
		var verr *report.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, msgInvalidAnalysis, verr.Issues)
			return
		}
		if err != nil {
			logger.Error("safety analysis failed", "error", err)
			writeError(w, http.StatusInternalServerError, msgAnalysisError)
			return
		}

		writeData(w, http.StatusOK, res)
	}
}
