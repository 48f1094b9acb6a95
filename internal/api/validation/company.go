package validation

import "strings"

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CreateCompanyRequest mirrors the fields needed for create company validation.
type CreateCompanyRequest struct {
	Name        string
	Description string
	Rating      int
}

// ValidateCreateCompanyRequest validates the fields of a create company request.
func ValidateCreateCompanyRequest(req CreateCompanyRequest) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > 255 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 255 characters"})
	}

	if len(req.Description) > 1024 {
		errs = append(errs, FieldError{Field: "description", Message: "description must be at most 1024 characters"})
	}

	if req.Rating < 1 || req.Rating > 5 {
		errs = append(errs, FieldError{Field: "rating", Message: "rating must be between 1 and 5"})
	}

	return errs
}
