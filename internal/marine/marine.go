// Package marine defines the core domain types for the self-report service.
package marine

// Coordinates is a WGS84 point. Lat ∈ [-90,90], Lng ∈ [-180,180].
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SafetyLevel classifies a location's baseline safety.
type SafetyLevel string

const (
	SafetyHigh   SafetyLevel = "HIGH"
	SafetyMedium SafetyLevel = "MEDIUM"
	SafetyLow    SafetyLevel = "LOW"
)

// Location is immutable reference data seeded at startup.
type Location struct {
	Name            string      `json:"name"`
	Coordinates     Coordinates `json:"coordinates"`
	SafetyLevel     SafetyLevel `json:"safetyLevel,omitempty"`
	FishingRights   bool        `json:"fishingRights"`
	NavigationRoute bool        `json:"navigationRoute"`
}

// ActivityType is a closed enum of supported marine leisure activities.
// Values are the Korean activity names used across the API.
type ActivityType string

const (
	ActivityPaddleboard ActivityType = "패들보드"
	ActivityFreediving  ActivityType = "프리다이빙"
	ActivityKayak       ActivityType = "카약"
	ActivityWindsurfing ActivityType = "윈드서핑"
	ActivityWaterSki    ActivityType = "수상스키"
	ActivityYacht       ActivityType = "요트"
)

// ActivityTypes lists every valid activity, in display order.
var ActivityTypes = []ActivityType{
	ActivityPaddleboard,
	ActivityFreediving,
	ActivityKayak,
	ActivityWindsurfing,
	ActivityWaterSki,
	ActivityYacht,
}

// Valid reports whether t is one of the known activity types.
func (t ActivityType) Valid() bool {
	for _, a := range ActivityTypes {
		if t == a {
			return true
		}
	}
	return false
}

// WeatherCondition is the simulated sky state.
type WeatherCondition string

const (
	WeatherClear  WeatherCondition = "CLEAR"
	WeatherCloudy WeatherCondition = "CLOUDY"
	WeatherRainy  WeatherCondition = "RAINY"
	WeatherStormy WeatherCondition = "STORMY"
)

// Visibility is derived from the condition, never drawn independently.
type Visibility string

const (
	VisibilityGood     Visibility = "GOOD"
	VisibilityModerate Visibility = "MODERATE"
	VisibilityPoor     Visibility = "POOR"
)

// WeatherSnapshot is a simulated weather record, generated fresh per scoring
// request and embedded in the resulting report. It is never persisted on its
// own.
type WeatherSnapshot struct {
	Condition   WeatherCondition `json:"condition"`
	WindSpeed   float64          `json:"windSpeed"`   // m/s
	WaveHeight  float64          `json:"waveHeight"`  // meters
	Visibility  Visibility       `json:"visibility"`
	Temperature float64          `json:"temperature"` // °C
}

// SafetyStatus is the categorical verdict of a safety analysis.
type SafetyStatus string

const (
	StatusApproved SafetyStatus = "APPROVED"
	StatusCaution  SafetyStatus = "CAUTION"
	StatusDenied   SafetyStatus = "DENIED"
)

// SafetyAnalysis holds the composite score and its components, each clamped
// to [0,100]. Recomputed per request, never mutated in place.
type SafetyAnalysis struct {
	OverallScore      int `json:"overallScore"`
	WeatherScore      int `json:"weatherScore"`
	LocationScore     int `json:"locationScore"`
	FishingRightScore int `json:"fishingRightScore"`
	FisheryScore      int `json:"fisheryScore"`
	NavigationScore   int `json:"navigationScore"`
}

// ZoneType classifies a safety zone polygon.
type ZoneType string

const (
	ZoneSafe       ZoneType = "SAFE"
	ZoneCaution    ZoneType = "CAUTION"
	ZoneDanger     ZoneType = "DANGER"
	ZoneFishing    ZoneType = "FISHING"
	ZoneNavigation ZoneType = "NAVIGATION"
)

// SafetyZone is a named polygonal region with a safety classification.
// Coordinates form a simple polygon of at least three vertices.
type SafetyZone struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Type        ZoneType      `json:"type"`
	Coordinates []Coordinates `json:"coordinates"`
	SafetyLevel SafetyLevel   `json:"safetyLevel,omitempty"`
	Description string        `json:"description"`
}

// FisheryInfo describes fishing-rights restrictions at a location.
type FisheryInfo struct {
	HasRestriction  bool   `json:"hasRestriction"`
	RestrictionType string `json:"restrictionType,omitempty"`
	ContactInfo     string `json:"contactInfo,omitempty"`
}

// EmergencyContacts are the phone numbers attached to a report.
type EmergencyContacts struct {
	CoastGuard         string `json:"coastGuard"`
	Rescue             string `json:"rescue"`
	LocalAuthority     string `json:"localAuthority"`
	LocalPolice        string `json:"localPolice"`
	FishingAssociation string `json:"fishingAssociation,omitempty"`
}

// Activity is the reported activity window.
type Activity struct {
	Type         ActivityType `json:"type"`
	StartTime    string       `json:"startTime,omitempty"` // HH:MM
	EndTime      string       `json:"endTime,omitempty"`   // HH:MM
	Participants int          `json:"participants"`
}

// Contact is the reporter's contact info.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Report is the assembled, stored outcome of a submission. Created once at
// submission time and immutable thereafter.
type Report struct {
	ReportID          string            `json:"reportId"`
	Status            SafetyStatus      `json:"status"`
	Analysis          SafetyAnalysis    `json:"analysis"`
	Weather           WeatherSnapshot   `json:"weather"`
	Recommendations   []string          `json:"recommendations"`
	EmergencyContacts EmergencyContacts `json:"emergencyContacts"`
	SafetyZones       []SafetyZone      `json:"safetyZones"`
	Location          Location          `json:"location"`
	Activity          Activity          `json:"activity"`
	Contact           Contact           `json:"contact"`
	SubmittedAt       string            `json:"submittedAt"` // RFC 3339
}
