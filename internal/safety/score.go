package safety

import (
	"math"
	"strconv"
	"strings"

	"github.com/haeyanglab/searep/internal/marine"
)

// Input describes one scoring request. StartTime and EndTime are optional
// "HH:MM" strings; when absent the activity is treated as daytime.
type Input struct {
	Location     marine.Location
	Activity     marine.ActivityType
	Participants int
	Weather      marine.WeatherSnapshot
	StartTime    string
	EndTime      string
}

// Result is the outcome of a scoring run.
type Result struct {
	Status   marine.SafetyStatus
	Analysis marine.SafetyAnalysis
}

// Score computes the sub-scores and the weighted overall score for in, and
// maps the overall score to a verdict.
func Score(in Input) Result {
	weather := WeatherScore(in.Weather)
	location := LocationScore(in.Location.SafetyLevel)
	activity := ActivityRisk(in.Activity, in.Participants)
	timeOfDay := TimeRisk(in.StartTime, in.EndTime)

	overall := int(math.Round(
		float64(location)*weightLocation +
			float64(weather)*weightWeather +
			float64(activity)*weightActivity +
			float64(timeOfDay)*weightTime))
	overall = clamp(overall)

	analysis := marine.SafetyAnalysis{
		OverallScore:  overall,
		WeatherScore:  weather,
		LocationScore: location,
	}
	if in.Location.FishingRights {
		analysis.FishingRightScore = fishingRightRestricted
		analysis.FisheryScore = fisheryRestricted
	} else {
		analysis.FishingRightScore = fishingRightOpen
		analysis.FisheryScore = fisheryOpen
	}
	if in.Location.NavigationRoute {
		analysis.NavigationScore = navigationOnRoute
	} else {
		analysis.NavigationScore = navigationClear
	}

	return Result{Status: StatusFor(overall), Analysis: analysis}
}

// StatusFor maps an overall score to the categorical verdict.
func StatusFor(overall int) marine.SafetyStatus {
	switch {
	case overall >= ApprovedMin:
		return marine.StatusApproved
	case overall >= CautionMin:
		return marine.StatusCaution
	default:
		return marine.StatusDenied
	}
}

// WeatherScore scores a weather snapshot: condition base minus wind and
// wave penalties, clamped to [0,100]. Worsening wind or waves never raises
// the score.
func WeatherScore(w marine.WeatherSnapshot) int {
	var score int
	switch w.Condition {
	case marine.WeatherClear:
		score = weatherBaseClear
	case marine.WeatherCloudy:
		score = weatherBaseCloudy
	case marine.WeatherRainy:
		score = weatherBaseRainy
	default:
		score = weatherBaseStormy
	}

	if w.WindSpeed > windStrongThreshold {
		score -= windStrongPenalty
	} else if w.WindSpeed > windFreshThreshold {
		score -= windFreshPenalty
	}

	if w.WaveHeight > waveHighThreshold {
		score -= waveHighPenalty
	} else if w.WaveHeight > waveModerateThreshold {
		score -= waveModeratePenalty
	}

	return clamp(score)
}

// LocationScore maps a location's safety level to its sub-score.
func LocationScore(level marine.SafetyLevel) int {
	switch level {
	case marine.SafetyHigh:
		return locationScoreHigh
	case marine.SafetyMedium:
		return locationScoreMedium
	case marine.SafetyLow:
		return locationScoreLow
	default:
		return locationScoreDefault
	}
}

// ActivityRisk scores an activity type, penalizing large groups.
func ActivityRisk(activity marine.ActivityType, participants int) int {
	base, ok := activityRisks[activity]
	if !ok {
		base = activityRiskDefault
	}

	if participants > participantFreeAllowance {
		base -= (participants - participantFreeAllowance) * participantPenaltyStep
	}
	if base < activityRiskFloor {
		return activityRiskFloor
	}
	return base
}

// TimeRisk scores the activity window by its start and end hours. Night
// activity is penalized hardest, early starts and late ends moderately.
// Missing or unparsable times count as daytime.
func TimeRisk(startTime, endTime string) int {
	start, okStart := parseHour(startTime)
	end, okEnd := parseHour(endTime)

	if okStart && (start >= nightHourEvening || start <= nightHourMorning) ||
		okEnd && (end >= nightHourEvening || end <= nightHourMorning) {
		return timeRiskNight
	}
	if okStart && start <= earlyStartHour || okEnd && end >= lateEndHour {
		return timeRiskEdge
	}
	return timeRiskDaytime
}

func parseHour(hhmm string) (int, bool) {
	h, _, found := strings.Cut(hhmm, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
