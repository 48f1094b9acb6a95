package validation

import "strings"

// CreateTaskRequest mirrors the fields needed for create task validation.
type CreateTaskRequest struct {
	Summary     string
	Description string
	Priority    int
}

// ValidateCreateTaskRequest validates the fields of a create task request.
func ValidateCreateTaskRequest(req CreateTaskRequest) []FieldError {
	var errs []FieldError

	summary := strings.TrimSpace(req.Summary)
	if summary == "" {
		errs = append(errs, FieldError{Field: "summary", Message: "summary is required"})
	} else if len(summary) > 100 {
		errs = append(errs, FieldError{Field: "summary", Message: "summary must be at most 100 characters"})
	}

	if len(req.Description) > 256 {
		errs = append(errs, FieldError{Field: "description", Message: "description must be at most 256 characters"})
	}

	if req.Priority < 0 {
		errs = append(errs, FieldError{Field: "priority", Message: "priority must be zero or greater"})
	}

	return errs
}
