package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/haeyanglab/searep/internal/marine"
	"github.com/haeyanglab/searep/internal/report"
)

// ReportResponse wraps a stored report in the standard success envelope.
type ReportResponse struct {
	Success bool          `json:"success"`
	Data    marine.Report `json:"data"`
}

// AnalysisResponse wraps a quick safety analysis in the standard success envelope.
type AnalysisResponse struct {
	Success bool                  `json:"success"`
	Data    report.AnalysisResult `json:"data"`
}

// ErrorResponse is returned for all error responses. Details is only present
// on validation failures.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Details []report.FieldIssue `json:"details,omitempty"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "해양레저 자율신고 API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Self-reporting API for marine leisure activities with rule-based safety scoring.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/report/submit
	postSubmit, _ := r.NewOperationContext(http.MethodPost, "/api/report/submit")
	postSubmit.SetSummary("Submit activity report")
	postSubmit.SetDescription("Submits a marine leisure activity report. Runs the safety analysis and returns the stored report with its verdict.")
	postSubmit.AddReqStructure(report.SubmitRequest{})
	postSubmit.AddRespStructure(ReportResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSubmit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postSubmit.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(postSubmit)

	// GET /api/report/{id}
	getReport, _ := r.NewOperationContext(http.MethodGet, "/api/report/{id}")
	getReport.SetSummary("Look up report")
	getReport.SetDescription("Returns a previously submitted report by its ID.")
	getReport.AddRespStructure(ReportResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getReport.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	getReport.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getReport)

	// POST /api/safety/analysis
	postAnalysis, _ := r.NewOperationContext(http.MethodPost, "/api/safety/analysis")
	postAnalysis.SetSummary("Quick safety analysis")
	postAnalysis.SetDescription("Returns a safety analysis for a location and activity without storing a report.")
	postAnalysis.AddReqStructure(report.AnalysisRequest{})
	postAnalysis.AddRespStructure(AnalysisResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnalysis.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postAnalysis.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(postAnalysis)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
