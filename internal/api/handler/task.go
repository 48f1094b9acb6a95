package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taskdesk/taskdesk/internal/api/middleware"
	"github.com/taskdesk/taskdesk/internal/api/response"
	"github.com/taskdesk/taskdesk/internal/api/validation"
	"github.com/taskdesk/taskdesk/internal/task"
)

type createTaskRequest struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

type taskResponse struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Status      string `json:"status"`
	UserID      string `json:"userId"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toTaskResponse(t *task.Task) taskResponse {
	return taskResponse{
		ID:          t.ID.String(),
		Summary:     t.Summary,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      string(t.Status),
		UserID:      t.UserID.String(),
		CreatedAt:   t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   t.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// TaskHandler handles task endpoints.
type TaskHandler struct {
	repo task.Repository
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(repo task.Repository) *TaskHandler {
	return &TaskHandler{repo: repo}
}

// Create handles POST /tasks. The owner is stamped from the caller's
// identity and the status starts at TODO regardless of the payload.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity := middleware.GetIdentity(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateCreateTaskRequest(validation.CreateTaskRequest{
		Summary:     req.Summary,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	t := &task.Task{
		Summary:     strings.TrimSpace(req.Summary),
		Description: req.Description,
		Priority:    req.Priority,
		Status:      task.StatusTodo,
		UserID:      identity.UserID,
	}

	if err := h.repo.Create(r.Context(), t); err != nil {
		if errors.Is(err, task.ErrDuplicateSummary) {
			response.Err(w, http.StatusConflict, "DUPLICATE_SUMMARY", "A task with this summary already exists", requestID)
			return
		}
		slog.Error("failed to create task", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create task", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toTaskResponse(t), requestID)
}

// List handles GET /tasks, returning only the caller's own tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity := middleware.GetIdentity(r.Context())

	tasks, err := h.repo.ListByOwner(r.Context(), identity.UserID)
	if err != nil {
		slog.Error("failed to list tasks", "error", err, "userId", identity.UserID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tasks", requestID)
		return
	}

	items := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, toTaskResponse(&tasks[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}
