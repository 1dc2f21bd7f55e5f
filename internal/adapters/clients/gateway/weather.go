package gateway

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen/homepage-gateway/internal/domain"
)

// FetchGeoLocation resolves the caller's location from its IP through amap.
func (g *Gateway) FetchGeoLocation(ctx context.Context, apiKey string) (domain.GeoLocation, error) {
	if apiKey == "" {
		return nil, invalidArgs(g.amap, opGeoLocation, "apiKey")
	}

	g.logger.DebugContext(ctx, "fetching geolocation")

	return g.getDocument(ctx, opGeoLocation, g.amap, amapIPPath, keyQuery(apiKey))
}

// FetchWeather fetches the amap weather report for an administrative region code.
func (g *Gateway) FetchWeather(ctx context.Context, apiKey, cityCode string) (domain.WeatherReport, error) {
	if apiKey == "" {
		return nil, invalidArgs(g.amap, opWeather, "apiKey")
	}

	if cityCode == "" {
		return nil, invalidArgs(g.amap, opWeather, "cityCode")
	}

	g.logger.DebugContext(ctx, "fetching weather", slog.String("city_code", cityCode))

	query := url.Values{
		queryParamKey:      {apiKey},
		queryParamCityCode: {cityCode},
	}

	return g.getDocument(ctx, opWeather, g.amap, amapWeatherPath, query)
}

// FetchAlternateWeather fetches the oioweb weather report for the caller's location.
func (g *Gateway) FetchAlternateWeather(ctx context.Context) (domain.WeatherReport, error) {
	g.logger.DebugContext(ctx, "fetching alternate weather")

	return g.getDocument(ctx, opAlternateWeather, g.oioweb, oiowebWeatherPath, nil)
}

// FetchUserWeather fetches the nsmao weather report using the embedded key.
func (g *Gateway) FetchUserWeather(ctx context.Context) (domain.WeatherReport, error) {
	g.logger.DebugContext(ctx, "fetching user weather")

	return g.getDocument(ctx, opUserWeather, g.nsmao, nsmaoWeatherPath, keyQuery(g.nsmaoKey))
}
