package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextKeyRequestID))
	})

	t.Run("generates an id when none is sent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagates the caller id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, "trace-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "trace-42", w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 200))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeadersMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 2)
	rl.now = func() time.Time { return now }

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)

	ok, wait := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, time.Second, wait)

	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok, "clients have separate buckets")

	now = now.Add(time.Second)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok, "bucket refills over time")
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 1)
	rl.now = func() time.Time { return now }

	rl.Allow("10.0.0.1")
	assert.Len(t, rl.clients, 1)

	now = now.Add(11 * time.Minute)
	rl.Allow("10.0.0.2")
	assert.Len(t, rl.clients, 1)
	assert.Contains(t, rl.clients, "10.0.0.2")
}

func TestRateLimiter_Middleware(t *testing.T) {
	router := gin.New()
	router.Use(NewRateLimiter(0.5, 1).Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
}

func TestReadOnlyMiddleware(t *testing.T) {
	newRouter := func(enabled bool) *gin.Engine {
		router := gin.New()
		router.Use(ReadOnlyMiddleware(enabled))
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		router.POST("/", func(c *gin.Context) { c.Status(http.StatusCreated) })
		return router
	}

	t.Run("blocks writes when enabled", func(t *testing.T) {
		router := newRouter(true)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("passes writes when disabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(false).ServeHTTP(w, httptest.NewRequest("POST", "/", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
