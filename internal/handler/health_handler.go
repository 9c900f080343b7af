package handler

import (
	"context"

	"drh-client/internal/domain"
	"drh-client/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports the reachability of the optional backing services.
type HealthHandler struct {
	cache domain.DocumentCache
	db    Pinger
}

// NewHealthHandler accepts nil for services that are not configured.
func NewHealthHandler(cache domain.DocumentCache, db Pinger) *HealthHandler {
	return &HealthHandler{cache: cache, db: db}
}

// Health handles GET /health. It answers 503 when a configured service is
// down.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Services: map[string]string{}}
	check := func(name string, ping func(context.Context) error) {
		if err := ping(c.UserContext()); err != nil {
			resp.Status = "degraded"
			resp.Services[name] = "down: " + err.Error()
			return
		}
		resp.Services[name] = "up"
	}

	if h.cache != nil {
		check("redis", h.cache.Ping)
	} else {
		resp.Services["redis"] = "disabled"
	}
	if h.db != nil {
		check("database", h.db.PingContext)
	} else {
		resp.Services["database"] = "disabled"
	}

	if resp.Status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
