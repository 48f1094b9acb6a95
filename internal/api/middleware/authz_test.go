package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/taskdesk/taskdesk/internal/api/middleware"
	"github.com/taskdesk/taskdesk/internal/user"
)

// authedRequest builds a request carrying a valid bearer token for the user.
func authedRequest(t *testing.T, u *user.User) *http.Request {
	t.Helper()
	tokens := newTokens(t)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueFor(t, tokens, u))
	return req
}

func runGate(t *testing.T, gate func(http.Handler) http.Handler, req *http.Request) (*httptest.ResponseRecorder, *bool) {
	t.Helper()
	reached := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Auth(newTokens(t))(gate(inner))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w, &reached
}

func TestRequireSuperuser(t *testing.T) {
	companyID := uuid.New()

	tests := []struct {
		name       string
		user       *user.User
		wantStatus int
	}{
		{"superuser passes", testUser(false, true, nil), http.StatusOK},
		{"regular user forbidden", testUser(false, false, &companyID), http.StatusForbidden},
		{"admin forbidden", testUser(true, false, &companyID), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, reached := runGate(t, middleware.RequireSuperuser(), authedRequest(t, tt.user))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, *reached)
		})
	}
}

func TestRequireSuperuser_NoIdentity(t *testing.T) {
	handler := middleware.RequireSuperuser()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	companyID := uuid.New()

	tests := []struct {
		name       string
		user       *user.User
		wantStatus int
	}{
		{"admin passes", testUser(true, false, &companyID), http.StatusOK},
		{"regular user forbidden", testUser(false, false, &companyID), http.StatusForbidden},
		// The create-user gate is is_admin only; superusers do not pass implicitly.
		{"superuser without admin flag forbidden", testUser(false, true, nil), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, reached := runGate(t, middleware.RequireAdmin(), authedRequest(t, tt.user))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, *reached)
		})
	}
}
