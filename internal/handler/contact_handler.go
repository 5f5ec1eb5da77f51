package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/ratelimit"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/logger"
)

// maxBodyBytes caps intake request bodies; these are public
// unauthenticated endpoints.
const maxBodyBytes = 64 << 10

const contactSuccessMessage = "Thanks for reaching out! I'll get back to you within 24 hours."

// ContactHandler handles contact-form submission HTTP requests
type ContactHandler struct {
	contactService service.ContactService
	limiter        ratelimit.Limiter
	log            *logger.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService service.ContactService, limiter ratelimit.Limiter, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		limiter:        limiter,
		log:            log,
	}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := clientKey(r)
	if !h.limiter.Allow(ctx, key) {
		h.log.WithField("client_key", key).Warn("Contact submission rate limited")
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"error": "Too many requests. Please try again later.",
		})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req domain.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.WithError(err).Error("Failed to parse contact request body")
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": service.GenericErrorMessage,
		})
		return
	}

	if fieldErrors := validateContactRequest(&req); len(fieldErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "Validation failed",
			"errors": fieldErrors,
		})
		return
	}

	// Bots fill the decoy field. Pretend everything worked so automated
	// submitters cannot learn they were detected; nothing is stored.
	if strings.TrimSpace(req.Website) != "" {
		h.log.WithField("client_key", key).Debug("Honeypot triggered, dropping submission")
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}

	submission, err := h.contactService.Submit(ctx, &req)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": contactSuccessMessage,
		"id":      submission.ID,
	})
}

// validateContactRequest checks every field and returns a message for each
// one that fails, so the frontend can render all errors at once.
func validateContactRequest(req *domain.ContactRequest) map[string]string {
	fieldErrors := make(map[string]string)

	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < 2 {
		fieldErrors["name"] = "Name must be at least 2 characters"
	} else if utf8.RuneCountInString(name) > 100 {
		fieldErrors["name"] = "Name must be less than 100 characters"
	}

	if !domain.ValidEmail(strings.TrimSpace(req.Email)) {
		fieldErrors["email"] = "Please enter a valid email address"
	}

	if company := strings.TrimSpace(req.Company); utf8.RuneCountInString(company) > 100 {
		fieldErrors["company"] = "Company must be less than 100 characters"
	}

	message := strings.TrimSpace(req.Message)
	if utf8.RuneCountInString(message) < 10 {
		fieldErrors["message"] = "Message must be at least 10 characters"
	} else if utf8.RuneCountInString(message) > 5000 {
		fieldErrors["message"] = "Message must be less than 5000 characters"
	}

	// projectType, budget and timeline are opaque tags picked from the
	// frontend's option lists; they are not re-validated here.

	return fieldErrors
}

// RegisterRoutes registers contact handler routes with the router
func (h *ContactHandler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.Submit)
}
