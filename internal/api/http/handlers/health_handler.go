package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pos-service/internal/observability"
	"github.com/spec-kit/pos-service/internal/persistence"
)

const dependencyProbeTimeout = 2 * time.Second

// HealthHandler responds to liveness/readiness probes and serves the admin
// metrics report. Postgres is a hard dependency; Redis is not, since the
// catalog degrades to database reads without it.
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
	metrics     *observability.Metrics
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		postgres:    postgres,
		redis:       redis,
		metrics:     metrics,
	}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness. The database must answer; an unreachable cache
// only marks the response as degraded.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), dependencyProbeTimeout)
	defer cancel()

	deps := fiber.Map{"database": "ok", "cache": "ok"}
	status := "ready"

	if err := h.redis.Ping(ctx); err != nil {
		deps["cache"] = err.Error()
		status = "degraded"
	}

	if err := h.postgres.Ping(ctx); err != nil {
		deps["database"] = err.Error()
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "database unavailable",
				"details": deps,
			},
		})
	}

	return c.JSON(fiber.Map{
		"status":       status,
		"dependencies": deps,
	})
}

// Metrics serves the in-process request counters (admin only).
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	uptime, routes, errorCodes := h.metrics.Snapshot()
	return success(c, fiber.Map{
		"service":       h.serviceName,
		"version":       h.version,
		"uptimeSeconds": int64(uptime.Seconds()),
		"routes":        routes,
		"errorCodes":    errorCodes,
	})
}
