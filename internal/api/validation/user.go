package validation

import "strings"

// CreateUserRequest mirrors the fields needed for create user validation.
type CreateUserRequest struct {
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// ValidateCreateUserRequest validates the fields of a create user request.
func ValidateCreateUserRequest(req CreateUserRequest) []FieldError {
	var errs []FieldError

	username := strings.TrimSpace(req.Username)
	if username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "username is required"})
	} else if len(username) > 255 {
		errs = append(errs, FieldError{Field: "username", Message: "username must be at most 255 characters"})
	}

	if strings.TrimSpace(req.FirstName) == "" {
		errs = append(errs, FieldError{Field: "firstName", Message: "firstName is required"})
	}

	if strings.TrimSpace(req.LastName) == "" {
		errs = append(errs, FieldError{Field: "lastName", Message: "lastName is required"})
	}

	if len(req.Password) < 8 {
		errs = append(errs, FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}

	return errs
}
