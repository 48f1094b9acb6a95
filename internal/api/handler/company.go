package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taskdesk/taskdesk/internal/api/middleware"
	"github.com/taskdesk/taskdesk/internal/api/response"
	"github.com/taskdesk/taskdesk/internal/api/validation"
	"github.com/taskdesk/taskdesk/internal/company"
)

type createCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
}

type companyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toCompanyResponse(c *company.Company) companyResponse {
	return companyResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Rating:      c.Rating,
		CreatedAt:   c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   c.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// CompanyHandler handles company endpoints.
type CompanyHandler struct {
	repo company.Repository
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(repo company.Repository) *CompanyHandler {
	return &CompanyHandler{repo: repo}
}

// Create handles POST /companies. The route is gated on superuser access;
// validation rejects out-of-range ratings before any persistence write.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateCreateCompanyRequest(validation.CreateCompanyRequest{
		Name:        req.Name,
		Description: req.Description,
		Rating:      req.Rating,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	c := &company.Company{
		Name:        req.Name,
		Description: req.Description,
		Rating:      req.Rating,
	}

	if err := h.repo.Create(r.Context(), c); err != nil {
		slog.Error("failed to create company", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create company", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toCompanyResponse(c), requestID)
}

// List handles GET /companies. Any authenticated identity may view companies.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	companies, err := h.repo.List(r.Context())
	if err != nil {
		slog.Error("failed to list companies", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list companies", requestID)
		return
	}

	items := make([]companyResponse, 0, len(companies))
	for i := range companies {
		items = append(items, toCompanyResponse(&companies[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}
