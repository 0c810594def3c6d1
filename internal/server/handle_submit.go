package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/haeyanglab/searep/internal/report"
)

// User-facing error messages, matched to the frontend copy.
const (
	msgInvalidSubmit   = "입력 데이터가 올바르지 않습니다."
	msgInvalidBody     = "요청 본문을 해석할 수 없습니다."
	msgInternalError   = "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
	msgInvalidAnalysis = "요청 데이터가 올바르지 않습니다."
	msgAnalysisError   = "안전도 분석 중 오류가 발생했습니다."
	msgReportNotFound  = "해당 신고를 찾을 수 없습니다."
	msgReportIDMissing = "신고 ID가 필요합니다."
)

func handleSubmitReport(logger *slog.Logger, svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req report.SubmitRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		rep, err := svc.Submit(r.Context(), req)
		var verr *report.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, msgInvalidSubmit, verr.Issues)
			return
		}
		if err != nil {
			logger.Error("report submission failed", "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		writeData(w, http.StatusOK, rep)
	}
}
