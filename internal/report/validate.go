package report

import (
	"regexp"
	"strings"
	"time"

	"github.com/haeyanglab/searep/internal/geo"
	"github.com/haeyanglab/searep/internal/marine"
)

// Participant bounds accepted by the form.
const (
	minParticipants = 1
	maxParticipants = 50
)

var phonePattern = regexp.MustCompile(`^01[016789]-?\d{3,4}-?\d{4}$`)

// LocationInput is the reported activity location.
type LocationInput struct {
	Name        string             `json:"name"`
	Coordinates marine.Coordinates `json:"coordinates"`
}

// SubmitRequest is the body of a report submission.
type SubmitRequest struct {
	Location         LocationInput       `json:"location"`
	ActivityType     marine.ActivityType `json:"activityType"`
	ParticipantCount int                 `json:"participantCount"`
	ContactInfo      marine.Contact      `json:"contactInfo"`
	ActivityDate     string              `json:"activityDate"`        // YYYY-MM-DD
	StartTime        string              `json:"startTime,omitempty"` // HH:MM
	EndTime          string              `json:"endTime,omitempty"`   // HH:MM
}

// AnalysisRequest is the body of a quick safety analysis.
type AnalysisRequest struct {
	Location     LocationInput       `json:"location"`
	ActivityType marine.ActivityType `json:"activityType"`
}

// validateSubmit checks every field and returns a *ValidationError listing
// all issues, or nil when the request is well formed.
func validateSubmit(req SubmitRequest) *ValidationError {
	var issues []FieldIssue

	issues = append(issues, validateLocation(req.Location)...)

	if !req.ActivityType.Valid() {
		issues = append(issues, FieldIssue{"activityType", "unknown activity type"})
	}
	if req.ParticipantCount < minParticipants || req.ParticipantCount > maxParticipants {
		issues = append(issues, FieldIssue{"participantCount", "must be between 1 and 50"})
	}
	if strings.TrimSpace(req.ContactInfo.Name) == "" {
		issues = append(issues, FieldIssue{"contactInfo.name", "required"})
	}
	if !phonePattern.MatchString(req.ContactInfo.Phone) {
		issues = append(issues, FieldIssue{"contactInfo.phone", "invalid phone number"})
	}
	if _, err := time.Parse("2006-01-02", req.ActivityDate); err != nil {
		issues = append(issues, FieldIssue{"activityDate", "must be YYYY-MM-DD"})
	}
	if req.StartTime != "" {
		if _, err := time.Parse("15:04", req.StartTime); err != nil {
			issues = append(issues, FieldIssue{"startTime", "must be HH:MM"})
		}
	}
	if req.EndTime != "" {
		if _, err := time.Parse("15:04", req.EndTime); err != nil {
			issues = append(issues, FieldIssue{"endTime", "must be HH:MM"})
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// validateAnalysis checks the quick analysis request.
func validateAnalysis(req AnalysisRequest) *ValidationError {
	issues := validateLocation(req.Location)

	if !req.ActivityType.Valid() {
		issues = append(issues, FieldIssue{"activityType", "unknown activity type"})
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func validateLocation(loc LocationInput) []FieldIssue {
	var issues []FieldIssue
	if strings.TrimSpace(loc.Name) == "" {
		issues = append(issues, FieldIssue{"location.name", "required"})
	}
	if !geo.ValidCoordinates(loc.Coordinates) {
		issues = append(issues, FieldIssue{"location.coordinates", "latitude or longitude out of range"})
	}
	return issues
}
