package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeyanglab/searep/internal/marine"
	"github.com/haeyanglab/searep/internal/observability"
	"github.com/haeyanglab/searep/internal/refdata"
	"github.com/haeyanglab/searep/internal/store"
)

// fixedWeather satisfies WeatherSource with a canned snapshot.
type fixedWeather struct {
	snap marine.WeatherSnapshot
}

func (f fixedWeather) Snapshot() marine.WeatherSnapshot { return f.snap }

var calm = marine.WeatherSnapshot{
	Condition:   marine.WeatherClear,
	WindSpeed:   3.2,
	WaveHeight:  0.5,
	Visibility:  marine.VisibilityGood,
	Temperature: 24,
}

var storm = marine.WeatherSnapshot{
	Condition:   marine.WeatherStormy,
	WindSpeed:   12.5,
	WaveHeight:  2.1,
	Visibility:  marine.VisibilityPoor,
	Temperature: 19,
}

func newTestService(t *testing.T, snap marine.WeatherSnapshot) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	svc := NewService(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		refdata.NewProvider(),
		mem,
		fixedWeather{snap},
		clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)),
		observability.NewMetricsForTesting(),
	)
	return svc, mem
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		Location: LocationInput{
			Name:        "부산 해운대해수욕장",
			Coordinates: marine.Coordinates{Lat: 35.1595, Lng: 129.1604},
		},
		ActivityType:     marine.ActivityPaddleboard,
		ParticipantCount: 2,
		ContactInfo:      marine.Contact{Name: "김해양", Phone: "010-1234-5678"},
		ActivityDate:     "2025-06-01",
		StartTime:        "10:00",
		EndTime:          "12:00",
	}
}

func TestSubmitApproved(t *testing.T) {
	svc, mem := newTestService(t, calm)

	rep, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, marine.StatusApproved, rep.Status)
	assert.Equal(t, 90, rep.Analysis.WeatherScore)
	assert.Equal(t, 95, rep.Analysis.LocationScore)
	assert.Equal(t, 92, rep.Analysis.OverallScore)
	assert.Regexp(t, regexp.MustCompile(`^RPT-20250601-\d{4}$`), rep.ReportID)
	assert.Equal(t, "2025-06-01T10:30:00Z", rep.SubmittedAt)

	// The 해운대 seed zones are attached, the distant ones are not.
	require.Len(t, rep.SafetyZones, 2)
	assert.Equal(t, "zone-1", rep.SafetyZones[0].ID)

	// Per-location directory, not the nationwide fallback.
	assert.Equal(t, "051-760-2000", rep.EmergencyContacts.CoastGuard)

	// Stored under its ID.
	stored, err := mem.Get(context.Background(), rep.ReportID)
	require.NoError(t, err)
	assert.Equal(t, rep.Status, stored.Status)
}

func TestSubmitDeniedInStorm(t *testing.T) {
	svc, _ := newTestService(t, storm)

	req := validRequest()
	req.Location = LocationInput{
		Name:        "경남 통영 한산도",
		Coordinates: marine.Coordinates{Lat: 34.8344, Lng: 128.4356},
	}

	rep, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, marine.StatusDenied, rep.Status)
	assert.LessOrEqual(t, rep.Analysis.WeatherScore, 30)
	// 한산도 is a fishing-rights location on a navigation route, so both
	// warnings close out the recommendation list.
	require.GreaterOrEqual(t, len(rep.Recommendations), 5)
	assert.Equal(t, "🎣 어업권 구역입니다. 어업 활동과의 충돌을 주의하세요.", rep.Recommendations[len(rep.Recommendations)-2])
	assert.Equal(t, "🚢 주요 항로 근처입니다. 선박 통행에 주의하세요.", rep.Recommendations[len(rep.Recommendations)-1])
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := newTestService(t, calm)

	req := validRequest()
	req.Location.Name = ""
	req.Location.Coordinates = marine.Coordinates{Lat: 91, Lng: 181}
	req.ActivityType = "스카이다이빙"
	req.ParticipantCount = 0
	req.ContactInfo.Phone = "invalid-phone"

	_, err := svc.Submit(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, len(verr.Issues))
	for i, issue := range verr.Issues {
		fields[i] = issue.Field
	}
	assert.Contains(t, fields, "location.name")
	assert.Contains(t, fields, "location.coordinates")
	assert.Contains(t, fields, "activityType")
	assert.Contains(t, fields, "participantCount")
	assert.Contains(t, fields, "contactInfo.phone")
}

func TestSubmitResolvesByProximity(t *testing.T) {
	svc, _ := newTestService(t, calm)

	req := validRequest()
	// Unknown name, but coordinates a few hundred meters off 해운대.
	req.Location = LocationInput{
		Name:        "내가 찍은 바다",
		Coordinates: marine.Coordinates{Lat: 35.1610, Lng: 129.1620},
	}

	rep, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "부산 해운대해수욕장", rep.Location.Name)
}

func TestSubmitFallsBackToFirstLocation(t *testing.T) {
	svc, _ := newTestService(t, calm)

	req := validRequest()
	// Valid coordinates far from every seeded location.
	req.Location = LocationInput{
		Name:        "독도 앞바다",
		Coordinates: marine.Coordinates{Lat: 37.24, Lng: 131.86},
	}

	rep, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	// Preserved fallback: scores against the first seeded location.
	assert.Equal(t, "부산 해운대해수욕장", rep.Location.Name)
}

func TestGetMissing(t *testing.T) {
	svc, _ := newTestService(t, calm)

	_, err := svc.Get(context.Background(), "RPT-19990101-0000")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestAnalyze(t *testing.T) {
	svc, mem := newTestService(t, calm)

	res, err := svc.Analyze(AnalysisRequest{
		Location: LocationInput{
			Name:        "부산 해운대해수욕장",
			Coordinates: marine.Coordinates{Lat: 35.1595, Lng: 129.1604},
		},
		ActivityType: marine.ActivityKayak,
	})
	require.NoError(t, err)

	assert.Equal(t, marine.StatusApproved, res.Analysis.Status)
	assert.Equal(t, 90, res.Analysis.Score.WeatherScore)
	assert.Equal(t, calm, res.Weather)
	assert.NotEmpty(t, res.Recommendations)
	assert.Len(t, res.SafetyZones, 2)

	// Quick analysis never persists anything.
	_, err = mem.Get(context.Background(), "RPT-20250601-0000")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestAnalyzeValidation(t *testing.T) {
	svc, _ := newTestService(t, calm)

	_, err := svc.Analyze(AnalysisRequest{
		Location:     LocationInput{Name: "", Coordinates: marine.Coordinates{Lat: 0, Lng: 0}},
		ActivityType: "달리기",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
