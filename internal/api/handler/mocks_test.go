package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/taskdesk/taskdesk/internal/api/middleware"
	"github.com/taskdesk/taskdesk/internal/auth"
	"github.com/taskdesk/taskdesk/internal/company"
	"github.com/taskdesk/taskdesk/internal/task"
	"github.com/taskdesk/taskdesk/internal/user"
)

const (
	testSecret     = "handler-test-secret"
	testBcryptCost = 4
)

// --- Mock User Repository ---

type mockUserRepo struct {
	createFn        func(ctx context.Context, u *user.User) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*user.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*user.User, error)
	listFn          func(ctx context.Context) ([]user.User, error)
	listByCompanyFn func(ctx context.Context, companyID uuid.UUID) ([]user.User, error)
	countAllFn      func(ctx context.Context) (int, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now().UTC()
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepo) List(ctx context.Context) ([]user.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []user.User{}, nil
}

func (m *mockUserRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]user.User, error) {
	if m.listByCompanyFn != nil {
		return m.listByCompanyFn(ctx, companyID)
	}
	return []user.User{}, nil
}

func (m *mockUserRepo) CountAll(ctx context.Context) (int, error) {
	if m.countAllFn != nil {
		return m.countAllFn(ctx)
	}
	return 0, nil
}

// --- Mock Company Repository ---

type mockCompanyRepo struct {
	createFn  func(ctx context.Context, c *company.Company) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*company.Company, error)
	listFn    func(ctx context.Context) ([]company.Company, error)
}

func (m *mockCompanyRepo) Create(ctx context.Context, c *company.Company) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	c.ID = uuid.New()
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	return nil
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, company.ErrCompanyNotFound
}

func (m *mockCompanyRepo) List(ctx context.Context) ([]company.Company, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []company.Company{}, nil
}

// --- Mock Task Repository ---

type mockTaskRepo struct {
	createFn      func(ctx context.Context, t *task.Task) error
	getByIDFn     func(ctx context.Context, id uuid.UUID) (*task.Task, error)
	listByOwnerFn func(ctx context.Context, userID uuid.UUID) ([]task.Task, error)
}

func (m *mockTaskRepo) Create(ctx context.Context, t *task.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	t.ID = uuid.New()
	t.CreatedAt = time.Now().UTC()
	t.UpdatedAt = t.CreatedAt
	return nil
}

func (m *mockTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, task.ErrTaskNotFound
}

func (m *mockTaskRepo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]task.Task, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, userID)
	}
	return []task.Task{}, nil
}

// --- Helpers ---

func newTokens(t *testing.T) *auth.Tokens {
	t.Helper()
	tokens, err := auth.NewTokens(testSecret, "HS256")
	require.NoError(t, err)
	return tokens
}

func sampleUser(username string, isAdmin, isSuperuser bool, companyID *uuid.UUID) *user.User {
	return &user.User{
		ID:          uuid.New(),
		Username:    username,
		FirstName:   "Test",
		LastName:    "User",
		IsActive:    true,
		IsAdmin:     isAdmin,
		IsSuperuser: isSuperuser,
		CompanyID:   companyID,
	}
}

// doAuthed sends a request through the bearer-auth middleware to the given
// handler, authenticated as the supplied user.
func doAuthed(t *testing.T, h http.Handler, method, target string, body any, caller *user.User) *httptest.ResponseRecorder {
	t.Helper()

	tokens := newTokens(t)

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, target, reqBody)
	raw, err := tokens.Issue(caller)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+raw)

	w := httptest.NewRecorder()
	middleware.Auth(tokens)(h).ServeHTTP(w, req)
	return w
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err)
	return env
}

func envelopeError(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	env := parseEnvelope(t, w)
	apiErr, ok := env["error"].(map[string]interface{})
	require.True(t, ok, "response should carry an error object: %s", w.Body.String())
	return apiErr
}

func envelopeData(t *testing.T, w *httptest.ResponseRecorder) interface{} {
	t.Helper()
	return parseEnvelope(t, w)["data"]
}
