package safety

import "github.com/haeyanglab/searep/internal/marine"

// Advisory strings shown to reporters. Order matters: the status block comes
// first, then weather warnings, then location-flag warnings.
const (
	recApprovedEnjoy    = "✅ 안전한 활동 조건입니다. 즐거운 해양레저를 즐기세요!"
	recApprovedLifevest = "🦺 구명조끼 착용을 필수로 하세요."
	recApprovedContacts = "📱 비상연락망을 미리 확인하세요."

	recCautionWeather = "⚠️ 주의가 필요한 기상 조건입니다."
	recCautionBuddy   = "👥 동행자와 함께 활동하세요."
	recCautionShorten = "⏰ 활동 시간을 단축하는 것을 권장합니다."

	recDeniedWeather   = "❌ 현재 기상 조건으로는 활동을 권장하지 않습니다."
	recDeniedResubmit  = "📅 기상 조건이 개선된 후 다시 신고해주세요."
	recDeniedAlternate = "🏠 안전한 실내 활동으로 대체를 권장합니다."

	recWindWarning = "💨 강한 바람으로 인한 주의가 필요합니다."
	recWaveWarning = "🌊 높은 파도로 인한 위험이 있습니다."

	recFishingRights = "🎣 어업권 구역입니다. 어업 활동과의 충돌을 주의하세요."
	recNavigation    = "🚢 주요 항로 근처입니다. 선박 통행에 주의하세요."
)

// Weather warning thresholds for the CAUTION additions.
const (
	warnWindSpeed  = 10.0 // m/s
	warnWaveHeight = 1.5  // meters
)

// Recommendations builds the ordered advisory list for a verdict.
// Deterministic given its inputs.
func Recommendations(status marine.SafetyStatus, weather marine.WeatherSnapshot, location marine.Location) []string {
	var recs []string

	switch status {
	case marine.StatusApproved:
		recs = append(recs, recApprovedEnjoy, recApprovedLifevest, recApprovedContacts)
	case marine.StatusCaution:
		recs = append(recs, recCautionWeather, recCautionBuddy, recCautionShorten)
		if weather.WindSpeed > warnWindSpeed {
			recs = append(recs, recWindWarning)
		}
		if weather.WaveHeight > warnWaveHeight {
			recs = append(recs, recWaveWarning)
		}
	default:
		recs = append(recs, recDeniedWeather, recDeniedResubmit, recDeniedAlternate)
	}

	if location.FishingRights {
		recs = append(recs, recFishingRights)
	}
	if location.NavigationRoute {
		recs = append(recs, recNavigation)
	}

	return recs
}

// Quick advisory strings for the lightweight analysis endpoint.
const (
	recQuickApproved = "✅ 현재 안전한 활동 조건입니다."
	recQuickGear     = "🦺 안전장비 착용을 권장합니다."
	recQuickCaution  = "⚠️ 주의가 필요한 조건입니다."
	recQuickBuddy    = "👥 경험있는 동행자와 함께 하세요."
	recQuickWind     = "💨 강풍 주의가 필요합니다."
	recQuickDenied   = "❌ 현재 활동을 권장하지 않습니다."
	recQuickRecheck  = "📅 기상 개선 후 재검토하세요."
)

// QuickRecommendations is the shorter list used by the quick safety
// analysis endpoint.
func QuickRecommendations(status marine.SafetyStatus, weather marine.WeatherSnapshot) []string {
	var recs []string

	switch status {
	case marine.StatusApproved:
		recs = append(recs, recQuickApproved, recQuickGear)
	case marine.StatusCaution:
		recs = append(recs, recQuickCaution, recQuickBuddy)
		if weather.WindSpeed > warnWindSpeed {
			recs = append(recs, recQuickWind)
		}
	default:
		recs = append(recs, recQuickDenied, recQuickRecheck)
	}

	return recs
}
