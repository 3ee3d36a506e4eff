package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-portal/internal/application/service"
	"github.com/khoahotran/resume-portal/pkg/apiclient"
	"github.com/khoahotran/resume-portal/pkg/apperror"
	"github.com/khoahotran/resume-portal/pkg/logger"
	"github.com/khoahotran/resume-portal/pkg/metrics"
)

const (
	GinContextKeyRequestID = "requestID"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or mints one, echoes it, and
// stores it where apiclient picks it up for backend calls.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(apiclient.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(GinContextKeyRequestID, id)
		c.Header(apiclient.HeaderRequestID, id)
		c.Request = c.Request.WithContext(apiclient.ContextWithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

func GetRequestIDFromGinContext(c *gin.Context) string {
	return c.GetString(GinContextKeyRequestID)
}

// LoggerMiddleware writes one structured line per request and records its latency.
func LoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.RecordViewRequest(c.Request.Method, route, strconv.Itoa(status), latency)

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", GetRequestIDFromGinContext(c)),
			zap.Duration("latency", latency),
		}
		if status >= 500 {
			log.Warn("Request failed", fields...)
			return
		}
		log.Info("Request served", fields...)
	}
}

// ErrorMiddleware renders the last error attached with c.Error.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		appErr := apperror.Wrap(c.Errors.Last().Err)
		status := apperror.ToHTTPStatus(appErr)

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestIDFromGinContext(c)),
		}
		if status >= 500 {
			log.Error("Request error", appErr, fields...)
		} else {
			log.Warn("Request rejected", append(fields, zap.Error(appErr))...)
		}

		if !c.Writer.Written() {
			c.JSON(status, appErr.ToJSON())
		}
	}
}

// RateLimitMiddleware allows limit requests per client IP per window. A limiter
// failure lets the request through.
func RateLimitMiddleware(limiter service.RateLimiter, limit int, window time.Duration, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limit <= 0 {
			c.Next()
			return
		}
		key := c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			log.Warn("Rate limiter unavailable, allowing request", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			metrics.IncrementRateLimited(c.FullPath())
			c.Error(apperror.NewRateLimited("limit of " + strconv.Itoa(limit) + " requests per " + window.String()))
			c.Abort()
			return
		}
		c.Next()
	}
}
