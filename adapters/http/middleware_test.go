package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/khoahotran/resume-portal/internal/application/service"
	"github.com/khoahotran/resume-portal/pkg/logger"
)

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string, int, time.Duration) (bool, error) {
	return false, errors.New("redis down")
}

func newLimitedRouter(limiter service.RateLimiter, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	router := gin.New()
	router.Use(ErrorMiddleware(log), RateLimitMiddleware(limiter, limit, time.Minute, log))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return router
}

func TestRateLimitMiddleware_LimiterFailureLetsRequestThrough(t *testing.T) {
	router := newLimitedRouter(brokenLimiter{}, 5)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRateLimitMiddleware_DisabledWithoutLimit(t *testing.T) {
	router := newLimitedRouter(denyingLimiter{denyKey: "192.0.2.1"}, 0)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestErrorMiddleware_UnknownErrorIsInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(logger.NewNop()))
	router.GET("/boom", func(c *gin.Context) { c.Error(errors.New("boom")) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "internal server error", "message": "An internal server error occurred"}`, w.Body.String())
}
