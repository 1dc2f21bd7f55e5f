package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/clients/gateway"
	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http"
	"github.com/jsamuelsen/homepage-gateway/internal/adapters/http/handlers"
	"github.com/jsamuelsen/homepage-gateway/internal/adapters/sitelinks"
	"github.com/jsamuelsen/homepage-gateway/internal/app"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/config"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/logging"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen/homepage-gateway/internal/ports"
)

func newServeCommand(profile *string, build handlers.BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the homepage API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *profile, build)
		},
	}
}

// runServe wires the gateway and blocks until ctx is cancelled.
func runServe(ctx context.Context, profile string, build handlers.BuildInfo) error {
	cfg, err := loadConfig(profile)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", build.Version),
		slog.String("commit", build.Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("profile", profile),
	)

	telProvider, err := telemetry.New(ctx, telemetry.ConfigFrom(cfg.App, cfg.Telemetry))
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx))
		if shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	server, err := NewServer(cfg, logger, build)
	if err != nil {
		return err
	}

	err = server.Run(ctx)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}

// NewServer builds the HTTP server and everything behind it from
// configuration. Nothing is started.
func NewServer(cfg *config.Config, logger *slog.Logger, build handlers.BuildInfo) (*http.Server, error) {
	gw, err := gateway.NewFromConfig(cfg.Client, cfg.Services, logger)
	if err != nil {
		return nil, fmt.Errorf("creating gateway: %w", err)
	}

	linkStore := sitelinks.NewStore(cfg.SiteLinks.Path)

	healthRegistry := ports.NewHealthRegistry()

	err = healthRegistry.Register(linkStore)
	if err != nil {
		return nil, fmt.Errorf("registering site links health check: %w", err)
	}

	playlistService := app.NewPlaylistService(app.PlaylistServiceConfig{Source: gw, Logger: logger})
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{Source: gw, Logger: logger})
	weatherService := app.NewWeatherService(app.WeatherServiceConfig{Source: gw, Logger: logger})
	homeService := app.NewHomeService(app.HomeServiceConfig{
		Playlist: playlistService,
		Quotes:   quoteService,
		Weather:  weatherService,
		Logger:   logger,
	})

	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:           logger,
		AppConfig:        &cfg.App,
		HealthHandler:    handlers.NewHealthHandler(healthRegistry, build),
		PlaylistHandler:  handlers.NewPlaylistHandler(playlistService),
		QuoteHandler:     handlers.NewQuoteHandler(quoteService),
		WeatherHandler:   handlers.NewWeatherHandler(weatherService),
		HomeHandler:      handlers.NewHomeHandler(homeService),
		SiteLinksHandler: handlers.NewSiteLinksHandler(linkStore),
	})

	return server, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
}
