// Package careers provides HTTP handlers and business logic for managing job postings.
package careers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fairplay-hq/fairplay-backend/internal/domain"
	"github.com/fairplay-hq/fairplay-backend/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the careers module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new careers handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterPublicRoutes registers routes readable without authentication.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/jobs", h.ListJobs)
	r.Get("/jobs/{id}", h.GetJob)
}

// RegisterAdminRoutes registers routes that require an admin session.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/jobs", h.CreateJob)
	r.Put("/jobs/{id}", h.UpdateJob)
	r.Delete("/jobs/{id}", h.DeleteJob)
	r.Post("/jobs/{id}/toggle", h.ToggleJobStatus)
}

// JobRequest represents the request body for creating or replacing a job posting.
type JobRequest struct {
	Title            string   `json:"title" validate:"required,min=1,max=255"`
	Team             string   `json:"team" validate:"required,min=1,max=100"`
	Location         string   `json:"location" validate:"required,min=1,max=100"`
	Type             string   `json:"type" validate:"required,oneof=Full-time Part-time Contract Internship"`
	Level            string   `json:"level" validate:"required,oneof=Entry Mid-level Senior Lead"`
	Description      string   `json:"description" validate:"required"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
}

// dropBlank removes entries that are empty or whitespace only.
func dropBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			out = append(out, it)
		}
	}
	return out
}

// CreateJob handles POST /jobs request.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	job, err := h.service.CreateJob(r.Context(), CreateJobInput{
		Title:            req.Title,
		Team:             req.Team,
		Location:         req.Location,
		Type:             domain.JobType(req.Type),
		Level:            domain.JobLevel(req.Level),
		Description:      req.Description,
		Requirements:     dropBlank(req.Requirements),
		Responsibilities: dropBlank(req.Responsibilities),
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, job)
}

// ListJobs handles GET /jobs request. With ?active=true only active postings
// are returned.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	filter := JobFilter{}

	if r.URL.Query().Get("active") == "true" {
		filter.ActiveOnly = true
	}

	jobs, err := h.service.ListJobs(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, jobs)
}

// GetJob handles GET /jobs/{id} request.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	job, err := h.service.GetJobByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, job)
}

// UpdateJob handles PUT /jobs/{id} request. The body fully replaces the
// posting's mutable fields.
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	job, err := h.service.UpdateJob(r.Context(), id, UpdateJobInput{
		Title:            req.Title,
		Team:             req.Team,
		Location:         req.Location,
		Type:             domain.JobType(req.Type),
		Level:            domain.JobLevel(req.Level),
		Description:      req.Description,
		Requirements:     dropBlank(req.Requirements),
		Responsibilities: dropBlank(req.Responsibilities),
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, job)
}

// DeleteJob handles DELETE /jobs/{id} request. Deletion is idempotent.
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteJob(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleJobStatus handles POST /jobs/{id}/toggle request.
func (h *Handler) ToggleJobStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	job, err := h.service.ToggleJobStatus(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, job)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
		{Error: ErrJobNotFound, Status: http.StatusNotFound},
	})
}
