// Package safety implements the rule-based safety scoring engine and the
// recommendation texts derived from its verdicts. Scoring is a pure
// function of its inputs; the weather snapshot is drawn by the caller.
package safety

import "github.com/haeyanglab/searep/internal/marine"

// Verdict thresholds on the overall score.
const (
	ApprovedMin = 80
	CautionMin  = 60
)

// Weather sub-score rules: a base per condition minus wind and wave
// penalties, clamped to [0,100].
const (
	weatherBaseClear  = 90
	weatherBaseCloudy = 70
	weatherBaseRainy  = 40
	weatherBaseStormy = 20

	windStrongThreshold = 10.0 // m/s
	windFreshThreshold  = 5.0
	windStrongPenalty   = 30
	windFreshPenalty    = 15

	waveHighThreshold     = 1.5 // meters
	waveModerateThreshold = 1.0
	waveHighPenalty       = 40
	waveModeratePenalty   = 20
)

// Location sub-scores by safety level.
const (
	locationScoreHigh    = 95
	locationScoreMedium  = 75
	locationScoreLow     = 50
	locationScoreDefault = 75
)

// Flag-derived sub-scores.
const (
	fishingRightRestricted = 70
	fishingRightOpen       = 100
	fisheryRestricted      = 65
	fisheryOpen            = 95
	navigationOnRoute      = 75
	navigationClear        = 100
)

// Activity risk: per-activity base minus 2 points per participant beyond 5,
// floored at 30.
const (
	activityRiskDefault      = 75
	activityRiskFloor        = 30
	participantFreeAllowance = 5
	participantPenaltyStep   = 2
)

var activityRisks = map[marine.ActivityType]int{
	marine.ActivityPaddleboard: 85,
	marine.ActivityKayak:       80,
	marine.ActivityWindsurfing: 70,
	marine.ActivityFreediving:  50,
	marine.ActivityWaterSki:    70,
	marine.ActivityYacht:       75,
}

// Time-of-day risk.
const (
	timeRiskNight    = 60 // any bound at 18:00–06:00
	timeRiskEdge     = 80 // early morning start or late afternoon end
	timeRiskDaytime  = 100
	nightHourEvening = 18
	nightHourMorning = 6
	earlyStartHour   = 8
	lateEndHour      = 17
)

// Overall score weights.
const (
	weightLocation = 0.3
	weightWeather  = 0.4
	weightActivity = 0.2
	weightTime     = 0.1
)
