package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStaticRoutes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>links</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "script.js"), []byte("console.log(1)"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterStaticRoutes(router, dir)

	w := doRequest(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "links")

	w = doRequest(router, http.MethodGet, "/script.js", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/static/style.css", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())
}

func TestRegisterStaticRoutes_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterStaticRoutes(router, "")

	w := doRequest(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
