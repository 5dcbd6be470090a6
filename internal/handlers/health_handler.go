package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const healthPingTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store  pinger
	logger *zap.SugaredLogger
}

func NewHealthHandler(store pinger, logger *zap.SugaredLogger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &HealthHandler{store: store, logger: logger}
}

// Health reports 503 when the word store cannot be reached
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logWithContext(h.logger, c, zapcore.ErrorLevel, "health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
