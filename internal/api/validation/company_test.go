package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskdesk/taskdesk/internal/api/validation"
)

func fields(errs []validation.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateCreateCompanyRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       validation.CreateCompanyRequest
		wantError []string
	}{
		{
			name: "valid",
			req:  validation.CreateCompanyRequest{Name: "Acme", Description: "desc", Rating: 4},
		},
		{
			name:      "missing name",
			req:       validation.CreateCompanyRequest{Name: "  ", Description: "desc", Rating: 3},
			wantError: []string{"name"},
		},
		{
			name:      "rating too high",
			req:       validation.CreateCompanyRequest{Name: "Acme", Description: "desc", Rating: 6},
			wantError: []string{"rating"},
		},
		{
			name:      "rating too low",
			req:       validation.CreateCompanyRequest{Name: "Acme", Description: "desc", Rating: 0},
			wantError: []string{"rating"},
		},
		{
			name:      "rating boundary values pass",
			req:       validation.CreateCompanyRequest{Name: "Acme", Rating: 1},
		},
		{
			name:      "everything wrong",
			req:       validation.CreateCompanyRequest{Name: "", Rating: -1},
			wantError: []string{"name", "rating"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateCreateCompanyRequest(tt.req)
			if len(tt.wantError) == 0 {
				assert.Empty(t, errs)
				return
			}
			assert.ElementsMatch(t, tt.wantError, fields(errs))
		})
	}
}
