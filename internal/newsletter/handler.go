// Package newsletter provides HTTP handlers and business logic for newsletter subscribers.
package newsletter

import (
	"encoding/json"
	"net/http"

	"github.com/fairplay-hq/fairplay-backend/internal/domain"
	"github.com/fairplay-hq/fairplay-backend/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the newsletter module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new newsletter handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterAdminRoutes registers routes that require an admin session.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/subscribers", h.ListSubscribers)
	r.Delete("/subscribers/{id}", h.Unsubscribe)
}

// SubscribeRequest represents the request body for a subscribe call.
type SubscribeRequest struct {
	Email  string `json:"email" validate:"required,email,max=320"`
	Source string `json:"source" validate:"omitempty,max=50"`
}

// SubscribeResponse is the body returned by both fresh and repeat subscribes.
type SubscribeResponse struct {
	Message    string             `json:"message"`
	Subscriber *domain.Subscriber `json:"subscriber"`
}

// Subscribe handles POST /subscribers request. A repeat subscribe returns 200
// with the existing subscriber; a fresh one returns 201.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	result, err := h.service.Subscribe(r.Context(), SubscribeInput{
		Email:  req.Email,
		Source: req.Source,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if result.AlreadyExists {
		httputil.JSON(w, http.StatusOK, SubscribeResponse{
			Message:    "You're already subscribed!",
			Subscriber: result.Subscriber,
		})
		return
	}

	httputil.JSON(w, http.StatusCreated, SubscribeResponse{
		Message:    "Successfully subscribed!",
		Subscriber: result.Subscriber,
	})
}

// ListSubscribers handles GET /subscribers request.
func (h *Handler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.service.ListSubscribers(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, subscribers)
}

// GetCount handles GET /subscribers/count request.
func (h *Handler) GetCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.CountSubscribers(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]int{"count": count})
}

// Unsubscribe handles DELETE /subscribers/{id} request. Idempotent.
func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Unsubscribe(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	httputil.HandleError(r.Context(), w, err, nil)
}
