// Package report assembles submissions into stored safety reports: it
// validates the request, resolves the location, draws a weather snapshot,
// runs the scoring engine, and persists the composed result.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/haeyanglab/searep/internal/marine"
	"github.com/haeyanglab/searep/internal/observability"
	"github.com/haeyanglab/searep/internal/refdata"
	"github.com/haeyanglab/searep/internal/safety"
	"github.com/haeyanglab/searep/internal/store"
)

// WeatherSource draws one weather snapshot per scoring request. The
// production implementation is the simulator in internal/weather; tests
// inject fixed snapshots.
type WeatherSource interface {
	Snapshot() marine.WeatherSnapshot
}

// Service is the report assembly boundary. It is the only writer of report
// records and the single place where scoring failures are translated for
// the transport layer.
type Service struct {
	logger   *slog.Logger
	provider *refdata.Provider
	store    store.Store
	weather  WeatherSource
	clock    clockwork.Clock
	metrics  *observability.Metrics
}

// NewService wires the assembly pipeline.
func NewService(
	logger *slog.Logger,
	provider *refdata.Provider,
	st store.Store,
	weather WeatherSource,
	clock clockwork.Clock,
	metrics *observability.Metrics,
) *Service {
	return &Service{
		logger:   logger,
		provider: provider,
		store:    st,
		weather:  weather,
		clock:    clock,
		metrics:  metrics,
	}
}

// Submit validates req, runs the full analysis, and stores the assembled
// report. Nothing is stored when any step fails. A malformed request
// returns *ValidationError.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (marine.Report, error) {
	if verr := validateSubmit(req); verr != nil {
		s.metrics.ValidationFailures.Inc()
		return marine.Report{}, verr
	}
	start := time.Now()

	location := s.resolveLocation(req.Location)
	snapshot := s.weather.Snapshot()

	result := safety.Score(safety.Input{
		Location:     location,
		Activity:     req.ActivityType,
		Participants: req.ParticipantCount,
		Weather:      snapshot,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	})

	now := s.clock.Now().UTC()
	rep := marine.Report{
		ReportID:          newReportID(now),
		Status:            result.Status,
		Analysis:          result.Analysis,
		Weather:           snapshot,
		Recommendations:   safety.Recommendations(result.Status, snapshot, location),
		EmergencyContacts: s.provider.ContactsFor(location.Name),
		SafetyZones:       s.provider.ZonesNear(req.Location.Coordinates, refdata.ZoneRadius),
		Location:          location,
		Activity: marine.Activity{
			Type:         req.ActivityType,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Participants: req.ParticipantCount,
		},
		Contact:     req.ContactInfo,
		SubmittedAt: now.Format(time.RFC3339),
	}

	if err := s.store.Put(ctx, rep); err != nil {
		return marine.Report{}, fmt.Errorf("storing report %s: %w", rep.ReportID, err)
	}

	s.metrics.ReportsSubmitted.WithLabelValues(string(rep.Status)).Inc()
	s.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	s.logger.Info("report stored",
		"report_id", rep.ReportID,
		"status", rep.Status,
		"overall_score", rep.Analysis.OverallScore,
		"location", location.Name,
	)

	return rep, nil
}

// Get returns a stored report by ID, or store.ErrNotFound.
func (s *Service) Get(ctx context.Context, reportID string) (marine.Report, error) {
	return s.store.Get(ctx, reportID)
}

// Analysis pairs a verdict with its sub-scores for the quick endpoint.
type Analysis struct {
	Status marine.SafetyStatus   `json:"status"`
	Score  marine.SafetyAnalysis `json:"score"`
}

// AnalysisResult is the quick safety analysis outcome. Nothing is stored.
type AnalysisResult struct {
	Analysis        Analysis               `json:"analysis"`
	Weather         marine.WeatherSnapshot `json:"weather"`
	SafetyZones     []marine.SafetyZone    `json:"safetyZones"`
	Recommendations []string               `json:"recommendations"`
}

// Analyze runs the scoring engine without persisting anything: one
// participant, no schedule, and the wider zone radius.
func (s *Service) Analyze(req AnalysisRequest) (AnalysisResult, error) {
	if verr := validateAnalysis(req); verr != nil {
		s.metrics.ValidationFailures.Inc()
		return AnalysisResult{}, verr
	}

	location := s.resolveLocation(req.Location)
	snapshot := s.weather.Snapshot()

	result := safety.Score(safety.Input{
		Location:     location,
		Activity:     req.ActivityType,
		Participants: 1,
		Weather:      snapshot,
	})

	return AnalysisResult{
		Analysis:        Analysis{Status: result.Status, Score: result.Analysis},
		Weather:         snapshot,
		SafetyZones:     s.provider.ZonesNear(req.Location.Coordinates, refdata.AnalysisZoneRadius),
		Recommendations: safety.QuickRecommendations(result.Status, snapshot),
	}, nil
}

// resolveLocation matches by exact name first, then by proximity. An
// unmatched location falls back to the first seeded entry instead of
// failing the submission.
func (s *Service) resolveLocation(in LocationInput) marine.Location {
	if loc, ok := s.provider.LocationByName(in.Name); ok {
		return loc
	}
	if loc := s.provider.Nearest(in.Coordinates); loc != nil {
		return *loc
	}
	return s.provider.First()
}
