package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apierrors "github.com/banka-network/banka-backend/internal/api/shared/errors"
	"github.com/banka-network/banka-backend/internal/logger"
)

const (
	HEADER_REQUEST_ID      = "X-Request-ID"
	CONTEXT_KEY_REQUEST_ID = "request_id"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HEADER_REQUEST_ID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(CONTEXT_KEY_REQUEST_ID, id)
		c.Header(HEADER_REQUEST_ID, id)
		c.Next()
	}
}

// Logger returns a gin middleware for structured logging using zap.
// Health and metrics probes are logged at debug level.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		level := zapcore.InfoLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = zapcore.ErrorLevel
		case path == "/api/health" || path == "/metrics":
			level = zapcore.DebugLevel
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(CONTEXT_KEY_REQUEST_ID)),
		}
		if subject, ok := AuthSubject(c); ok {
			fields = append(fields, zap.String("subject", subject))
		}

		logger.FromContext(c.Request.Context()).Log(level, "API request", fields...)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(CONTEXT_KEY_REQUEST_ID)),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					apierrors.NewInternalError("Internal server error"))
			}
		}()
		c.Next()
	}
}
