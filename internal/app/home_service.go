package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/homepage-gateway/internal/domain"
)

// homeSections is the number of independent sections on the homepage.
const homeSections = 3

// HomeSnapshot is everything the homepage shows on first paint.
// Each section carries either its data or the error that prevented it.
type HomeSnapshot struct {
	Playlist   []domain.PlaybackTrack
	Quote      domain.QuoteRecord
	QuoteErr   error
	Weather    domain.WeatherReport
	WeatherErr error
}

// HomeService assembles the homepage from the other services.
type HomeService struct {
	playlist    *PlaylistService
	quotes      *QuoteService
	weather     *WeatherService
	concurrency int
	logger      *slog.Logger
}

// HomeServiceConfig contains configuration for the home service.
type HomeServiceConfig struct {
	Playlist *PlaylistService
	Quotes   *QuoteService
	Weather  *WeatherService

	// Concurrency bounds the number of upstream calls in flight. Zero runs
	// every section at once.
	Concurrency int

	Logger *slog.Logger
}

// NewHomeService creates a new home service.
// Panics if any service is nil. Defaults logger to slog.Default() if nil.
func NewHomeService(cfg HomeServiceConfig) *HomeService {
	if cfg.Playlist == nil || cfg.Quotes == nil || cfg.Weather == nil {
		panic("HomeService: Playlist, Quotes and Weather are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &HomeService{
		playlist:    cfg.Playlist,
		quotes:      cfg.Quotes,
		weather:     cfg.Weather,
		concurrency: cfg.Concurrency,
		logger:      logger,
	}
}

// Snapshot fetches the playlist, a hitokoto quote and the alternate weather
// report concurrently. A failing section never cancels the others.
func (s *HomeService) Snapshot(ctx context.Context) *HomeSnapshot {
	snap := &HomeSnapshot{}

	errs := RunPartial(ctx, s.concurrency,
		func(ctx context.Context) error {
			snap.Playlist = s.playlist.Playlist(ctx, "", "", "")
			return nil
		},
		func(ctx context.Context) error {
			var err error
			snap.Quote, err = s.quotes.Hitokoto(ctx)

			return err
		},
		func(ctx context.Context) error {
			var err error
			snap.Weather, err = s.weather.AlternateWeather(ctx)

			return err
		},
	)

	snap.QuoteErr = errs[1]
	snap.WeatherErr = errs[2]

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}

	s.logger.InfoContext(ctx, "assembled home snapshot",
		slog.Int("sections", homeSections),
		slog.Int("failed", failed),
		slog.Int("tracks", len(snap.Playlist)),
	)

	return snap
}
