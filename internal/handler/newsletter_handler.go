package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/logger"
)

const (
	subscribedMessage  = "Thanks for subscribing! You'll hear from me soon."
	reactivatedMessage = "Welcome back! Your subscription has been reactivated."
)

// NewsletterHandler handles newsletter signup HTTP requests
type NewsletterHandler struct {
	newsletterService service.NewsletterService
	log               *logger.Logger
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(newsletterService service.NewsletterService, log *logger.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
		log:               log,
	}
}

// Subscribe handles POST /api/newsletter
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req domain.NewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.WithError(err).Error("Failed to parse newsletter request body")
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": service.GenericErrorMessage,
		})
		return
	}

	email := strings.TrimSpace(req.Email)
	if !domain.ValidEmail(email) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Please enter a valid email address",
		})
		return
	}

	// Email identity is case-insensitive
	email = strings.ToLower(email)

	outcome, err := h.newsletterService.Subscribe(ctx, email)
	if err != nil {
		writeAppError(w, err)
		return
	}

	message := subscribedMessage
	if outcome == service.OutcomeReactivated {
		message = reactivatedMessage
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
	})
}

// RegisterRoutes registers newsletter handler routes with the router
func (h *NewsletterHandler) RegisterRoutes(r chi.Router) {
	r.Post("/newsletter", h.Subscribe)
}
