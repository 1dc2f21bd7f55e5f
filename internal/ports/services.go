// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrUnavailable, ErrValidation)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/homepage-gateway/internal/domain"
)

// PlaylistSource provides tracks for the music player.
type PlaylistSource interface {
	// FetchPlaylist returns the available tracks. The hints are reserved for
	// provider selection. It never fails: on any upstream problem the result
	// is an empty, non-nil slice.
	FetchPlaylist(ctx context.Context, serverHint, typeHint, idHint string) []domain.PlaybackTrack
}

// QuoteSource provides quote documents from the interchangeable quote services.
type QuoteSource interface {
	// FetchQuote returns a hitokoto sentence.
	// Returns domain.ErrUnavailable on transport, status or decode failure.
	FetchQuote(ctx context.Context) (domain.QuoteRecord, error)

	// FetchUserQuote returns a quote from the keyed quote service.
	// Returns domain.ErrUnavailable on transport, status or decode failure.
	FetchUserQuote(ctx context.Context) (domain.QuoteRecord, error)
}

// WeatherSource provides geolocation and weather documents.
type WeatherSource interface {
	// FetchGeoLocation resolves the caller's IP location.
	// Returns domain.ErrValidation if apiKey is empty.
	FetchGeoLocation(ctx context.Context, apiKey string) (domain.GeoLocation, error)

	// FetchWeather returns the report for an administrative region code.
	// Returns domain.ErrValidation if apiKey or cityCode is empty.
	FetchWeather(ctx context.Context, apiKey, cityCode string) (domain.WeatherReport, error)

	// FetchAlternateWeather returns the report of the keyless weather service.
	FetchAlternateWeather(ctx context.Context) (domain.WeatherReport, error)

	// FetchUserWeather returns the report of the keyed weather service.
	FetchUserWeather(ctx context.Context) (domain.WeatherReport, error)
}

// SiteLinkSource provides the homepage link grid.
type SiteLinkSource interface {
	// Links returns every configured link in display order.
	// Returns domain.ErrValidation if the source is malformed.
	Links(ctx context.Context) ([]domain.SiteLink, error)
}
