package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/pkg/utils"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db     Pinger
	logger *zap.Logger
}

func NewHealthController(db Pinger, logger *zap.Logger) *HealthController {
	return &HealthController{db: db, logger: logger}
}

func (c *HealthController) Healthz(ctx echo.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx.Request().Context(), 2*time.Second)
	defer cancel()
	if err := c.db.Ping(pingCtx); err != nil {
		c.logger.Error("health check failed", zap.Error(err))
		return ctx.JSON(http.StatusServiceUnavailable, utils.HTTPResponse{Status: false, Message: "database unavailable"})
	}
	return ctx.JSON(http.StatusOK, utils.HTTPResponse{Status: true, Message: "ok"})
}
