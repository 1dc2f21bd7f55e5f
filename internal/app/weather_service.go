package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/homepage-gateway/internal/domain"
	"github.com/jsamuelsen/homepage-gateway/internal/ports"
)

// WeatherService serves the homepage weather widget.
type WeatherService struct {
	source ports.WeatherSource
	logger *slog.Logger
}

// WeatherServiceConfig contains configuration for the weather service.
type WeatherServiceConfig struct {
	Source ports.WeatherSource
	Logger *slog.Logger
}

// NewWeatherService creates a new weather service.
// Panics if Source is nil. Defaults logger to slog.Default() if nil.
func NewWeatherService(cfg WeatherServiceConfig) *WeatherService {
	if cfg.Source == nil {
		panic("WeatherService: Source is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &WeatherService{
		source: cfg.Source,
		logger: logger,
	}
}

// GeoLocation resolves the caller's location with the given amap key.
func (s *WeatherService) GeoLocation(ctx context.Context, apiKey string) (domain.GeoLocation, error) {
	geo, err := s.source.FetchGeoLocation(ctx, apiKey)
	if err != nil {
		s.logFailure(ctx, "geolocation", err)
		return nil, err
	}

	return geo, nil
}

// Weather returns the amap report for a region code.
func (s *WeatherService) Weather(ctx context.Context, apiKey, cityCode string) (domain.WeatherReport, error) {
	report, err := s.source.FetchWeather(ctx, apiKey, cityCode)
	if err != nil {
		s.logFailure(ctx, "weather", err)
		return nil, err
	}

	return report, nil
}

// AlternateWeather returns the keyless provider's report.
func (s *WeatherService) AlternateWeather(ctx context.Context) (domain.WeatherReport, error) {
	report, err := s.source.FetchAlternateWeather(ctx)
	if err != nil {
		s.logFailure(ctx, "alternate weather", err)
		return nil, err
	}

	return report, nil
}

// UserWeather returns the keyed provider's report.
func (s *WeatherService) UserWeather(ctx context.Context) (domain.WeatherReport, error) {
	report, err := s.source.FetchUserWeather(ctx)
	if err != nil {
		s.logFailure(ctx, "user weather", err)
		return nil, err
	}

	return report, nil
}

// LocalWeather looks up the caller's location and then fetches the weather
// for its region code. A location without a region code is reported as not
// found and no weather request is made.
func (s *WeatherService) LocalWeather(ctx context.Context, apiKey string) (domain.WeatherReport, error) {
	geo, err := s.GeoLocation(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("resolving location: %w", err)
	}

	adcode := geo.Adcode()
	if adcode == "" {
		s.logger.WarnContext(ctx, "geolocation has no region code", slog.String("city", geo.City()))
		return nil, domain.NewNotFoundError("adcode", "")
	}

	s.logger.DebugContext(ctx, "resolved location",
		slog.String("city", geo.City()),
		slog.String("adcode", adcode),
	)

	return s.Weather(ctx, apiKey, adcode)
}

func (s *WeatherService) logFailure(ctx context.Context, what string, err error) {
	s.logger.ErrorContext(ctx, "failed to fetch "+what, slog.Any("error", err))
}
