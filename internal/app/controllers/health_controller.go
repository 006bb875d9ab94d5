package controllers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnet/internal/app/models/dto"
)

// HealthCheck probes one backing store
type HealthCheck func(ctx context.Context) error

// HealthController reports whether the service can reach its backing stores
type HealthController struct {
	checks  map[string]HealthCheck
	timeout time.Duration
	logger  zerolog.Logger
}

// NewHealthController creates a HealthController running checks by name
func NewHealthController(checks map[string]HealthCheck, logger zerolog.Logger) *HealthController {
	return &HealthController{
		checks:  checks,
		timeout: 3 * time.Second,
		logger:  logger,
	}
}

// Health runs every check
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), c.timeout)
	defer cancel()

	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := dto.HealthResponse{
		Status:    "OK",
		Message:   "Server is running",
		Checks:    make(map[string]string, len(names)),
		CheckedAt: time.Now().UTC(),
	}
	status := http.StatusOK

	for _, name := range names {
		if err := c.checks[name](checkCtx); err != nil {
			c.logger.Error().Err(err).Str("check", name).Msg("Health check failed")
			resp.Checks[name] = "unavailable"
			resp.Status = "UNAVAILABLE"
			resp.Code = dto.ErrorCodeServiceUnavailable
			resp.Message = "A backing store is unreachable"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	ctx.JSON(status, resp)
}
