// Package adminauth provides the password gate for the admin area.
package adminauth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for admin authentication.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new admin auth handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers admin auth routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/verify", h.VerifyPassword)
}

// VerifyRequest represents the request body for password verification.
type VerifyRequest struct {
	Password string `json:"password" validate:"required"`
}

// VerifyResponse is returned on successful verification.
type VerifyResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// VerifyPassword handles POST /auth/verify request.
// The response bodies here use a bare {message} shape; the admin frontend
// reads data.message directly on both success and failure.
func (h *Handler) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Password is required")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, "Password is required")
		return
	}

	token, err := h.service.Verify(r.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrIncorrectPassword):
			h.respondMessage(w, http.StatusUnauthorized, "Incorrect password.")
		case errors.Is(err, ErrNotConfigured):
			h.respondMessage(w, http.StatusInternalServerError, "Admin password not configured.")
		default:
			slog.Error("password verification failed", "error", err)
			h.respondMessage(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(VerifyResponse{
		Message: "Authenticated",
		Token:   token,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) respondMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
