package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const healthTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Redis *redis.Client `optional:"true"`
}

// HealthHandler reports liveness and store reachability
type HealthHandler struct {
	redis *redis.Client
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{redis: params.Redis}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	status := map[string]string{"status": "ok"}
	if h.redis == nil {
		return c.JSON(http.StatusOK, status)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	if err := h.redis.Ping(ctx).Err(); err != nil {
		status["status"] = "degraded"
		status["store"] = "unreachable"

		return c.JSON(http.StatusServiceUnavailable, status)
	}
	status["store"] = "ok"

	return c.JSON(http.StatusOK, status)
}
