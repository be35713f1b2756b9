package middleware

import (
	"log/slog"
	"time"

	"github.com/gdugdh24/profiles-backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
)

// Logging puts a request-scoped logger into the request context and writes
// one record per request once the handler chain returns.
func Logging(l *slog.Logger) gin.HandlerFunc {
	if l == nil {
		l = slog.Default()
	}
	return func(c *gin.Context) {
		reqLogger := l
		if rid := c.GetHeader(RequestIDHeader); rid != "" {
			reqLogger = reqLogger.With(slog.String("request_id", rid))
		}
		c.Request = c.Request.WithContext(logger.Into(c.Request.Context(), reqLogger))

		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}
		reqLogger.LogAttrs(c.Request.Context(), level, "http",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("dur", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}
