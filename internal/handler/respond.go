package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"portfolio-api/internal/service"
	apperrors "portfolio-api/pkg/errors"
)

// unknownClientKey pools every request lacking a forwarding header into a
// single rate-limit bucket. Coarse, but the forwarding header is always
// set by the hosting proxy in production.
const unknownClientKey = "unknown"

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// writeAppError maps a service error to the response contract. Anything
// that is not a classified AppError becomes a generic 500.
func writeAppError(w http.ResponseWriter, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		writeJSON(w, appErr.StatusCode, map[string]string{"error": appErr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": service.GenericErrorMessage})
}

// clientKey derives the rate-limit identity for a request from the
// forwarded client address. X-Forwarded-For can carry multiple hops; the
// first entry is the originating client.
func clientKey(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return unknownClientKey
	}
	if i := strings.IndexByte(forwarded, ','); i >= 0 {
		forwarded = forwarded[:i]
	}
	if key := strings.TrimSpace(forwarded); key != "" {
		return key
	}
	return unknownClientKey
}
