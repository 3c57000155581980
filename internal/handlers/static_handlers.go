package handlers

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RegisterStaticRoutes serves the web UI out of dir. Nothing is registered when dir is empty.
func RegisterStaticRoutes(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	r.StaticFile("/", filepath.Join(dir, "index.html"))
	r.StaticFile("/style.css", filepath.Join(dir, "style.css"))
	r.StaticFile("/script.js", filepath.Join(dir, "script.js"))
	r.Static("/static", dir)
	log.Info().Str("dir", dir).Msg("Serving static UI")
}
