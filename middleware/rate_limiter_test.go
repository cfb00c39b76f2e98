package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"earec/config"
)

func TestRateLimitMiddleware_ConfiguredBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	prev := config.AppConfig.MaxRequestsPerMin
	defer func() { config.AppConfig.MaxRequestsPerMin = prev }()
	config.AppConfig.MaxRequestsPerMin = 2

	router := gin.New()
	router.Use(RateLimitMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Dedicated IP: the shared limiter store holds no prior state for it.
	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Real-IP", "10.9.8.7")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}
