package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DBPinger interface {
	Ping(ctx context.Context) error
}

type HealthChecker struct {
	db  DBPinger
	log *slog.Logger
}

func NewHealthChecker(db DBPinger, log *slog.Logger) *HealthChecker {
	return &HealthChecker{db: db, log: log}
}

// Root is the liveness probe: the process is up and serving.
func (h *HealthChecker) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Healthz reports per-dependency readiness.
func (h *HealthChecker) Healthz(c *gin.Context) {
	ctx := c.Request.Context()
	h.log.DebugContext(ctx, "Performing health checks...")

	status := make(map[string]string)
	overallStatus := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		status["database"] = "unavailable"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(ctx, "Health check failed: DB ping", "error", err)
	} else {
		status["database"] = "ok"
	}

	c.JSON(overallStatus, status)

	h.log.DebugContext(ctx, "Health checks completed", "status", overallStatus)
}
