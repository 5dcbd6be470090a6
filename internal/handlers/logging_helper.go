package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"io.winapps.thiday/internal/middleware"
)

// logWithContext logs msg at level with the request's fields in front of fields.
func logWithContext(logger *zap.SugaredLogger, c *gin.Context, level zapcore.Level, msg string, fields ...interface{}) {
	logger.Logw(level, msg, append(middleware.RequestFields(c), fields...)...)
}

func (h *WordHandler) logError(c *gin.Context, err error, msg string, fields ...interface{}) {
	logWithContext(h.logger, c, zapcore.ErrorLevel, msg, append(fields, "error", err)...)
}
