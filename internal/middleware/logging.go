package middleware

import (
	"bytes"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"

	// maxLoggedBody caps how much of an error response is copied into the log.
	maxLoggedBody = 4 << 10
)

// RequestIDMiddleware reuses the caller's X-Request-ID or generates one, and
// echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(RequestIDKey, rid)
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}

// RequestFields are the key/value pairs every request-scoped log line carries.
func RequestFields(c *gin.Context) []interface{} {
	return []interface{}{
		"request_id", c.GetString(RequestIDKey),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"client_ip", c.ClientIP(),
		"owner_id", c.GetString(OwnerKey),
	}
}

// cappedBodyWriter tees up to maxLoggedBody bytes of the response.
type cappedBodyWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cappedBodyWriter) Write(b []byte) (int, error) {
	if room := maxLoggedBody - w.body.Len(); room > 0 {
		w.body.Write(b[:min(room, len(b))])
	}
	return w.ResponseWriter.Write(b)
}

func completion(status int) (zapcore.Level, string) {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel, "request completed with server error"
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel, "request completed with client error"
	default:
		return zapcore.InfoLevel, "request completed"
	}
}

// RequestLoggingMiddleware logs request start and finish. The finish line's
// level follows the status, and error responses carry their body. Register it
// outside RecoveryMiddleware so recovered panics are logged as 500s.
func RequestLoggingMiddleware(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		recorder := &cappedBodyWriter{ResponseWriter: c.Writer}
		c.Writer = recorder

		logger.Debugw("request started", append(RequestFields(c), "user_agent", c.Request.UserAgent())...)

		c.Next()

		status := c.Writer.Status()
		fields := append(RequestFields(c),
			"route", c.FullPath(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		)

		level, msg := completion(status)
		if level >= zapcore.WarnLevel {
			fields = append(fields, "response", recorder.body.String())
		}
		logger.Logw(level, msg, fields...)
	}
}

// RecoveryMiddleware turns a panic into a 500 and logs the stack.
func RecoveryMiddleware(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			logger.Errorw("panic recovered", append(RequestFields(c), "panic", r, "stack", string(debug.Stack()))...)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":      "Internal server error",
				"request_id": c.GetString(RequestIDKey),
			})
		}()
		c.Next()
	}
}
