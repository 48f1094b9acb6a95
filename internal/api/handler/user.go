package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskdesk/taskdesk/internal/api/middleware"
	"github.com/taskdesk/taskdesk/internal/api/response"
	"github.com/taskdesk/taskdesk/internal/api/validation"
	"github.com/taskdesk/taskdesk/internal/auth"
	"github.com/taskdesk/taskdesk/internal/task"
	"github.com/taskdesk/taskdesk/internal/user"
)

type createUserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"isAdmin"`
}

type userResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	IsActive    bool    `json:"isActive"`
	IsAdmin     bool    `json:"isAdmin"`
	IsSuperuser bool    `json:"isSuperuser"`
	CompanyID   *string `json:"companyId,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

func toUserResponse(u *user.User) userResponse {
	resp := userResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsActive:    u.IsActive,
		IsAdmin:     u.IsAdmin,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if u.CompanyID != nil {
		cid := u.CompanyID.String()
		resp.CompanyID = &cid
	}
	return resp
}

// UserHandler handles user endpoints.
type UserHandler struct {
	hasher   *auth.Hasher
	userRepo user.Repository
	taskRepo task.Repository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(hasher *auth.Hasher, userRepo user.Repository, taskRepo task.Repository) *UserHandler {
	return &UserHandler{
		hasher:   hasher,
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}

// Create handles POST /users. The route is gated on admin access. The new
// user is attached to the caller's own company, whatever the payload says,
// and is never created as a superuser.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity := middleware.GetIdentity(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateCreateUserRequest(validation.CreateUserRequest{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create user", requestID)
		return
	}

	u := &user.User{
		Username:     strings.TrimSpace(req.Username),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      req.IsAdmin,
		IsSuperuser:  false,
		CompanyID:    identity.CompanyID,
	}

	if err := h.userRepo.Create(r.Context(), u); err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			response.Err(w, http.StatusConflict, "DUPLICATE_USERNAME", "A user with this username already exists", requestID)
			return
		}
		slog.Error("failed to create user", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create user", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toUserResponse(u), requestID)
}

// List handles GET /users. Superusers see every user; admins see only their
// own company; everyone else is denied.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity := middleware.GetIdentity(r.Context())

	scope, err := auth.ListUsersScope(identity)
	if err != nil {
		response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Insufficient permissions to list users", requestID)
		return
	}

	var users []user.User
	if scope.All {
		users, err = h.userRepo.List(r.Context())
	} else {
		users, err = h.userRepo.ListByCompany(r.Context(), scope.CompanyID)
	}
	if err != nil {
		slog.Error("failed to list users", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list users", requestID)
		return
	}

	items := make([]userResponse, 0, len(users))
	for i := range users {
		items = append(items, toUserResponse(&users[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}

// ListTasks handles GET /users/{id}/tasks. Only an admin of the target
// user's own company may view them.
func (h *UserHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity := middleware.GetIdentity(r.Context())

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return
	}

	target, err := h.userRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "User not found", requestID)
			return
		}
		slog.Error("failed to get user", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tasks", requestID)
		return
	}

	if err := auth.CanViewUserTasks(identity, target.CompanyID); err != nil {
		response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Insufficient permissions to view this user's tasks", requestID)
		return
	}

	tasks, err := h.taskRepo.ListByOwner(r.Context(), target.ID)
	if err != nil {
		slog.Error("failed to list tasks", "error", err, "userId", target.ID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tasks", requestID)
		return
	}

	items := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, toTaskResponse(&tasks[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}
