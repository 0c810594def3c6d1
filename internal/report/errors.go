package report

import "fmt"

// FieldIssue is one validation problem, addressed by its JSON field path.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError rejects a malformed submission. It carries every
// field-level issue so the client can surface all of them at once.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %d field issue(s)", len(e.Issues))
}
