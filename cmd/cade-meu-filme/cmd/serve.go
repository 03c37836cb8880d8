package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/rodgo4k/cade-meu-filme/internal/api/handlers"
	"github.com/rodgo4k/cade-meu-filme/internal/api/middleware"
	"github.com/rodgo4k/cade-meu-filme/internal/config"
	"github.com/rodgo4k/cade-meu-filme/internal/resolver"
	"github.com/rodgo4k/cade-meu-filme/internal/streaming"
	"github.com/rodgo4k/cade-meu-filme/internal/tmdb"
	"github.com/rodgo4k/cade-meu-filme/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	if !cfg.Streaming.Configured() {
		log.Warn("RAPIDAPI_KEY not set; every search will fail until it is configured")
	}
	if !cfg.TMDB.Configured() {
		log.Warn("TMDB_API_KEY not set; free-text search is disabled, direct ID lookups still work")
	}

	pipeline := buildPipeline(cfg, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(cfg.Streaming.Configured)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Cade Meu Filme API", Version))
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(pipeline, cfg.Search.MaxPerPage))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

// buildPipeline assembles the resolver from whatever credentials are present.
// Absent credentials leave the corresponding collaborator nil and the
// resolver degrades per request.
func buildPipeline(cfg *config.Config, log *slog.Logger) *resolver.Resolver {
	params := resolver.Params{
		Locale: cfg.TMDB.Language,
		Logger: log,
	}

	if cfg.TMDB.Configured() {
		params.Lookup = tmdb.NewClient(
			cfg.TMDB.APIKey,
			tmdb.WithBaseURL(cfg.TMDB.BaseURL),
			tmdb.WithHTTPClient(&http.Client{Timeout: cfg.TMDB.Timeout}),
		)
	}

	if cfg.Streaming.Configured() {
		shows := streaming.NewClient(
			cfg.Streaming.APIKey,
			streaming.WithBaseURL(cfg.Streaming.BaseURL),
			streaming.WithHost(cfg.Streaming.Host),
			streaming.WithCountries(cfg.Streaming.Countries),
			streaming.WithFallbackEndpoints(cfg.Streaming.FallbackEndpoints),
			streaming.WithHTTPClient(&http.Client{Timeout: cfg.Streaming.Timeout}),
		)
		params.Shows = shows
		if cfg.Streaming.TitleFallback {
			params.Titles = shows
		}
	}

	return resolver.New(params)
}
