package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"portfolio-api/pkg/database"
	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/redis"
)

// HealthHandler reports service and dependency health
type HealthHandler struct {
	db          *database.PostgresDB
	redisClient *redis.Client // nil when the in-memory limiter is in use
	log         *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.PostgresDB, redisClient *redis.Client, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
		log:         log,
	}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := "healthy"
	statusCode := http.StatusOK
	checks := map[string]string{}

	if err := h.db.Health(ctx); err != nil {
		h.log.WithError(err).Error("Database health check failed")
		checks["database"] = "down"
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	} else {
		checks["database"] = "up"
	}

	if h.redisClient != nil {
		if err := h.redisClient.Health(ctx); err != nil {
			h.log.WithError(err).Warn("Redis health check failed")
			checks["redis"] = "down"
			// Redis only backs the rate limiter, which fails open;
			// the service stays usable without it.
			if status == "healthy" {
				status = "degraded"
			}
		} else {
			checks["redis"] = "up"
		}
	}

	writeJSON(w, statusCode, map[string]interface{}{
		"status":    status,
		"checks":    checks,
		"timestamp": time.Now().UTC(),
	})
}

// RegisterRoutes registers health handler routes with the router
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
}
