package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	config "github.com/thirdweb-dev/blocklinks/configs"
	"github.com/thirdweb-dev/blocklinks/internal/fetcher"
	"github.com/thirdweb-dev/blocklinks/internal/handlers"
	"github.com/thirdweb-dev/blocklinks/internal/middleware"
)

const shutdownTimeout = 10 * time.Second

var (
	apiCmd = &cobra.Command{
		Use:   "api",
		Short: "Serve the block links API",
		Long:  "Serves GET /block/:blockNumber and POST /blocks together with the web UI, health and metrics endpoints.",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

func RunApi(cmd *cobra.Command, args []string) {
	blockFetcher, closeFetcher := newBlockFetcher()
	defer closeFetcher()

	r := NewRouter(blockFetcher, config.Cfg.API.StaticDir)

	srv := &http.Server{
		Addr:    config.Cfg.API.Addr(),
		Handler: r,
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting API server")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("API server failed")
		}
	case sig := <-sigChan:
		log.Info().Msgf("Received signal: %s, initiating graceful shutdown...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("API server shutdown failed")
		}
		log.Info().Msg("API server stopped")
	}
}

func NewRouter(blockFetcher fetcher.IBlockFetcher, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.Cors())

	blocksHandler := handlers.NewBlocksHandler(blockFetcher)
	r.GET("/block/:blockNumber", blocksHandler.GetBlockLinks)
	r.POST("/blocks", blocksHandler.GetBlockRangeLinks)

	handlers.RegisterStaticRoutes(r, staticDir)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
