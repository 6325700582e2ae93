// Package middleware provides Gin middleware shared across modules.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mantonx/streambase/internal/logger"
)

// RequestLogger logs HTTP requests with timing and a correlation ID
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip logging for health checks
		if c.Request.URL.Path == "/api/health" {
			c.Next()
			return
		}

		start := time.Now()
		requestID := uuid.New().String()[:8]
		c.Set("request_id", requestID)

		c.Next()

		logger.Debug("HTTP request",
			logger.String("request_id", requestID),
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.String("query", c.Request.URL.RawQuery),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.Int("size", c.Writer.Size()),
			logger.String("ip", c.ClientIP()),
		)
	}
}

// ErrorLogger logs errors attached to the Gin context
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			logger.Error("Request error",
				logger.String("path", c.Request.URL.Path),
				logger.String("method", c.Request.Method),
				logger.Err("error", err.Err),
			)
		}
	}
}
