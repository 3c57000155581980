package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(), Cors())
	r.GET("/block/:blockNumber", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestCors_Preflight(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/blocks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCors_ActualRequest(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/block/1", nil)
	req.Header.Set("Origin", "https://example.org")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.Equal(t, "https://example.org", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCors_NoOrigin(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/block/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
