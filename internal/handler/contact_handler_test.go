package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/ratelimit"
	"portfolio-api/internal/service"
	apperrors "portfolio-api/pkg/errors"
	"portfolio-api/pkg/logger"
)

func TestValidateContactRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        *domain.ContactRequest
		wantFields map[string]string
	}{
		{
			name: "valid request",
			req: &domain.ContactRequest{
				Name:    "Alice Smith",
				Email:   "alice@example.com",
				Message: "I would like to build a landing page for my startup.",
			},
			wantFields: map[string]string{},
		},
		{
			name: "name too short",
			req: &domain.ContactRequest{
				Name:    "A",
				Email:   "alice@example.com",
				Message: "I would like to build a landing page.",
			},
			wantFields: map[string]string{"name": "Name must be at least 2 characters"},
		},
		{
			name: "two character name passes",
			req: &domain.ContactRequest{
				Name:    "Al",
				Email:   "al@x.com",
				Message: "A sufficiently long message body.",
			},
			wantFields: map[string]string{},
		},
		{
			name: "name too long",
			req: &domain.ContactRequest{
				Name:    strings.Repeat("a", 101),
				Email:   "alice@example.com",
				Message: "I would like to build a landing page.",
			},
			wantFields: map[string]string{"name": "Name must be less than 100 characters"},
		},
		{
			name: "whitespace only name",
			req: &domain.ContactRequest{
				Name:    "   ",
				Email:   "alice@example.com",
				Message: "I would like to build a landing page.",
			},
			wantFields: map[string]string{"name": "Name must be at least 2 characters"},
		},
		{
			name: "email missing at sign",
			req: &domain.ContactRequest{
				Name:    "Alice Smith",
				Email:   "alice.example.com",
				Message: "I would like to build a landing page.",
			},
			wantFields: map[string]string{"email": "Please enter a valid email address"},
		},
		{
			name: "email missing domain segment",
			req: &domain.ContactRequest{
				Name:    "Alice Smith",
				Email:   "alice@example",
				Message: "I would like to build a landing page.",
			},
			wantFields: map[string]string{"email": "Please enter a valid email address"},
		},
		{
			name: "message too short",
			req: &domain.ContactRequest{
				Name:    "Al",
				Email:   "al@x.com",
				Message: "short",
			},
			wantFields: map[string]string{"message": "Message must be at least 10 characters"},
		},
		{
			name: "message too long",
			req: &domain.ContactRequest{
				Name:    "Alice Smith",
				Email:   "alice@example.com",
				Message: strings.Repeat("a", 5001),
			},
			wantFields: map[string]string{"message": "Message must be less than 5000 characters"},
		},
		{
			name: "company too long",
			req: &domain.ContactRequest{
				Name:    "Alice Smith",
				Email:   "alice@example.com",
				Company: strings.Repeat("a", 101),
				Message: "I would like to build a landing page.",
			},
			wantFields: map[string]string{"company": "Company must be less than 100 characters"},
		},
		{
			name: "optional enumerated fields are not validated",
			req: &domain.ContactRequest{
				Name:        "Alice Smith",
				Email:       "alice@example.com",
				ProjectType: "something-unlisted",
				Budget:      "a-zillion",
				Timeline:    "yesterday",
				Message:     "I would like to build a landing page.",
			},
			wantFields: map[string]string{},
		},
		{
			name: "multiple failures reported together",
			req: &domain.ContactRequest{
				Name:    "A",
				Email:   "nope",
				Message: "short",
			},
			wantFields: map[string]string{
				"name":    "Name must be at least 2 characters",
				"email":   "Please enter a valid email address",
				"message": "Message must be at least 10 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateContactRequest(tt.req)
			if len(tt.wantFields) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}

type stubContactService struct {
	submitFunc func(ctx context.Context, req *domain.ContactRequest) (*domain.ContactSubmission, error)
	calls      int
}

func (s *stubContactService) Submit(ctx context.Context, req *domain.ContactRequest) (*domain.ContactSubmission, error) {
	s.calls++
	if s.submitFunc != nil {
		return s.submitFunc(ctx, req)
	}
	return &domain.ContactSubmission{ID: 1}, nil
}

func newContactHandler(t *testing.T, svc service.ContactService, limiter ratelimit.Limiter) *ContactHandler {
	t.Helper()
	log, err := logger.New("error")
	require.NoError(t, err)
	if limiter == nil {
		limiter = ratelimit.NewMemoryLimiter(ratelimit.DefaultConfig())
	}
	return NewContactHandler(svc, limiter, log)
}

func postContact(t *testing.T, h *ContactHandler, body interface{}, forwardedFor string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}

	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func TestContactSubmitSuccess(t *testing.T) {
	svc := &stubContactService{
		submitFunc: func(_ context.Context, req *domain.ContactRequest) (*domain.ContactSubmission, error) {
			return &domain.ContactSubmission{ID: 17, Email: "alice@example.com"}, nil
		},
	}
	h := newContactHandler(t, svc, nil)

	rec := postContact(t, h, map[string]string{
		"name":    "Alice Smith",
		"email":   "ALICE@Example.com",
		"message": "I would like to build a landing page for my startup.",
	}, "203.0.113.7")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(17), resp["id"])
	assert.NotEmpty(t, resp["message"])
}

func TestContactSubmitValidationFailure(t *testing.T) {
	svc := &stubContactService{}
	h := newContactHandler(t, svc, nil)

	rec := postContact(t, h, map[string]string{
		"name":    "Al",
		"email":   "al@x.com",
		"message": "short",
	}, "203.0.113.7")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error  string            `json:"error"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Error)
	assert.Equal(t, map[string]string{"message": "Message must be at least 10 characters"}, resp.Errors)

	// Nothing reaches the service on validation failure
	assert.Equal(t, 0, svc.calls)
}

func TestContactSubmitHoneypot(t *testing.T) {
	svc := &stubContactService{}
	h := newContactHandler(t, svc, nil)

	rec := postContact(t, h, map[string]string{
		"name":    "Alice Smith",
		"email":   "alice@example.com",
		"message": "I would like to build a landing page for my startup.",
		"website": "https://spam.example.com",
	}, "203.0.113.7")

	// Success-shaped response, nothing persisted
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotContains(t, resp, "id")
	assert.Equal(t, 0, svc.calls)
}

func TestContactSubmitRateLimited(t *testing.T) {
	svc := &stubContactService{}
	limiter := ratelimit.NewMemoryLimiter(ratelimit.Config{Window: time.Minute, MaxRequests: 5})
	h := newContactHandler(t, svc, limiter)

	body := map[string]string{
		"name":    "Alice Smith",
		"email":   "alice@example.com",
		"message": "I would like to build a landing page for my startup.",
	}

	for i := 0; i < 5; i++ {
		rec := postContact(t, h, body, "203.0.113.7")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
	}

	rec := postContact(t, h, body, "203.0.113.7")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Too many requests. Please try again later.", resp["error"])

	// A different client is still served
	rec = postContact(t, h, body, "198.51.100.9")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestContactSubmitPersistenceFailure(t *testing.T) {
	svc := &stubContactService{
		submitFunc: func(_ context.Context, _ *domain.ContactRequest) (*domain.ContactSubmission, error) {
			return nil, apperrors.NewInternalError(service.GenericErrorMessage, errors.New("connection refused"))
		},
	}
	h := newContactHandler(t, svc, nil)

	rec := postContact(t, h, map[string]string{
		"name":    "Alice Smith",
		"email":   "alice@example.com",
		"message": "I would like to build a landing page for my startup.",
	}, "203.0.113.7")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.GenericErrorMessage, resp["error"])
	// The database failure detail never reaches the response
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestContactSubmitMalformedBody(t *testing.T) {
	svc := &stubContactService{}
	h := newContactHandler(t, svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	assert.Equal(t, "unknown", clientKey(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", clientKey(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientKey(req))
}
