//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"padelbook/internal/handler/middleware"
	"padelbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.Use(middleware.ErrorHandler())
	return router
}

func TestCustomRecovery(t *testing.T) {
	router := newTestRouter()
	router.GET("/panic", func(_ *gin.Context) {
		panic("boom")
	})

	w := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	t.Run("handler responses pass through untouched", func(t *testing.T) {
		router := newTestRouter()
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		router.GET("/conflict", func(c *gin.Context) {
			c.JSON(http.StatusConflict, gin.H{"error": "Court slot already booked"})
		})

		w := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, router, http.MethodGet, "/conflict", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Court slot already booked")
	})

	t.Run("bodyless statuses are preserved", func(t *testing.T) {
		router := newTestRouter()
		router.DELETE("/gone", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		w := httptest.PerformRequest(t, router, http.MethodDelete, "/gone", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("fallthrough without a response becomes a flat 500", func(t *testing.T) {
		router := newTestRouter()
		router.GET("/silent", func(_ *gin.Context) {})

		w := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}
