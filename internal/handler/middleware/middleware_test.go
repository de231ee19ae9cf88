//go:build unit

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"restro-ledger/internal/handler/httperr"
	"restro-ledger/internal/handler/middleware"
	"restro-ledger/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCORSConfig(t *testing.T) {
	t.Run("required ledger headers are added", func(t *testing.T) {
		cfg := middleware.CORSConfig(config.CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowHeaders:  []string{"Origin"},
			ExposeHeaders: nil,
		})

		assert.Subset(t, cfg.AllowHeaders, []string{"Origin", "Idempotency-Key", "Content-Type", middleware.RequestIDHeader})
		assert.Subset(t, cfg.ExposeHeaders, []string{"Location", "Content-Disposition"})
	})

	t.Run("configured headers are not duplicated", func(t *testing.T) {
		cfg := middleware.CORSConfig(config.CORSConfig{
			AllowHeaders: []string{"idempotency-key", "Content-Type", "X-Request-Id"},
		})

		assert.Len(t, cfg.AllowHeaders, 3)
	})

	t.Run("preflight allows Idempotency-Key", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{http.MethodPost},
		}))
		r.POST("/api/reservations", func(c *gin.Context) { c.Status(http.StatusCreated) })

		req := httptest.NewRequest(http.MethodOptions, "/api/reservations", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Idempotency-Key")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Idempotency-Key")
	})
}

func TestErrorHandler(t *testing.T) {
	decode := func(t *testing.T, w *httptest.ResponseRecorder) httperr.Response {
		t.Helper()
		var resp httperr.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
		return resp
	}

	t.Run("public error is returned as is", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/x", func(c *gin.Context) {
			httperr.AbortWithCode(c, http.StatusConflict, httperr.CodeCapacityExceeded, errors.New("full"), "Not enough seats available", nil)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decode(t, w)
		assert.Equal(t, httperr.CodeCapacityExceeded, resp.Error.Code)
		assert.Equal(t, "Not enough seats available", resp.Error.Message)
	})

	t.Run("status-derived code", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/x", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound, errors.New("gone"), "Reservation not found", nil)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, httperr.CodeNotFound, decode(t, w).Error.Code)
	})

	t.Run("private error without a response becomes 500", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/x", func(c *gin.Context) {
			_ = c.Error(errors.New("unexpected"))
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, httperr.CodeInternal, decode(t, w).Error.Code)
	})
}

func TestCustomRecovery(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Error.Message)
	assert.Equal(t, httperr.CodeInternal, resp.Error.Code)
}
