package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/haeyanglab/searep/internal/marine"
	"github.com/haeyanglab/searep/internal/refdata"
	"github.com/haeyanglab/searep/internal/store"
)

const demoReportID = "DEMO-001"

// SeedDemoReport stores a demo report for showcasing the report lookup page.
// Idempotent: does nothing if the demo report already exists.
func SeedDemoReport(ctx context.Context, logger *slog.Logger, st store.Store, provider *refdata.Provider) error {
	_, err := st.Get(ctx, demoReportID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	zones := provider.Zones()
	if len(zones) > 3 {
		zones = zones[:3]
	}

	demo := marine.Report{
		ReportID: demoReportID,
		Status:   marine.StatusApproved,
		Analysis: marine.SafetyAnalysis{
			OverallScore:      85,
			WeatherScore:      90,
			LocationScore:     95,
			FishingRightScore: 100,
			FisheryScore:      95,
			NavigationScore:   100,
		},
		Weather: marine.WeatherSnapshot{
			Condition:   marine.WeatherClear,
			WindSpeed:   3.2,
			WaveHeight:  0.5,
			Visibility:  marine.VisibilityGood,
			Temperature: 24,
		},
		Recommendations: []string{
			"✅ 안전한 활동 조건입니다. 즐거운 해양레저를 즐기세요!",
			"🦺 구명조끼 착용을 필수로 하세요.",
			"📱 비상연락망을 미리 확인하세요.",
		},
		EmergencyContacts: provider.ContactsFor(provider.First().Name),
		SafetyZones:       zones,
		Location:          provider.First(),
		Activity: marine.Activity{
			Type:         marine.ActivityPaddleboard,
			StartTime:    "10:00",
			EndTime:      "12:00",
			Participants: 2,
		},
		Contact: marine.Contact{
			Name:  "김해양",
			Phone: "010-1234-5678",
		},
		SubmittedAt: "2025-01-15T09:30:00Z",
	}

	if err := st.Put(ctx, demo); err != nil {
		return err
	}

	logger.Info("demo report seeded", "report_id", demoReportID)
	return nil
}
