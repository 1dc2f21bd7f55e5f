package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/homepage-gateway/internal/domain"
	"github.com/jsamuelsen/homepage-gateway/internal/mocks"
)

func newWeatherService(t *testing.T) (*WeatherService, *mocks.MockWeatherSource) {
	t.Helper()

	source := mocks.NewMockWeatherSource(t)

	return NewWeatherService(WeatherServiceConfig{Source: source, Logger: discardLogger()}), source
}

func TestNewWeatherService_PanicsWithoutSource(t *testing.T) {
	assert.Panics(t, func() {
		NewWeatherService(WeatherServiceConfig{})
	})
}

func TestWeatherService_PassThrough(t *testing.T) {
	svc, source := newWeatherService(t)
	report := domain.Document{"status": "1"}

	source.EXPECT().FetchGeoLocation(mock.Anything, "k").Return(domain.Document{"adcode": "110000"}, nil)
	source.EXPECT().FetchWeather(mock.Anything, "k", "110000").Return(report, nil)
	source.EXPECT().FetchAlternateWeather(mock.Anything).Return(report, nil)
	source.EXPECT().FetchUserWeather(mock.Anything).Return(report, nil)

	ctx := context.Background()

	geo, err := svc.GeoLocation(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "110000", geo.Adcode())

	got, err := svc.Weather(ctx, "k", "110000")
	require.NoError(t, err)
	assert.Equal(t, report, got)

	got, err = svc.AlternateWeather(ctx)
	require.NoError(t, err)
	assert.Equal(t, report, got)

	got, err = svc.UserWeather(ctx)
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestWeatherService_PropagatesErrors(t *testing.T) {
	svc, source := newWeatherService(t)

	source.EXPECT().FetchAlternateWeather(mock.Anything).Return(nil, domain.NewUnavailableError("oioweb", ""))
	source.EXPECT().FetchUserWeather(mock.Anything).Return(nil, domain.NewUnavailableError("nsmao", ""))
	source.EXPECT().FetchWeather(mock.Anything, "", "").Return(nil, domain.NewValidationError("apiKey", "is required"))

	_, err := svc.AlternateWeather(context.Background())
	assert.True(t, domain.IsUnavailable(err))

	_, err = svc.UserWeather(context.Background())
	assert.True(t, domain.IsUnavailable(err))

	_, err = svc.Weather(context.Background(), "", "")
	assert.True(t, domain.IsValidation(err))
}

func TestWeatherService_LocalWeather(t *testing.T) {
	t.Run("uses the adcode of the location", func(t *testing.T) {
		svc, source := newWeatherService(t)
		report := domain.Document{"lives": []any{}}

		source.EXPECT().FetchGeoLocation(mock.Anything, "k").
			Return(domain.Document{"city": "北京市", "adcode": "110000"}, nil)
		source.EXPECT().FetchWeather(mock.Anything, "k", "110000").Return(report, nil)

		got, err := svc.LocalWeather(context.Background(), "k")
		require.NoError(t, err)
		assert.Equal(t, report, got)
	})

	t.Run("location without adcode", func(t *testing.T) {
		svc, source := newWeatherService(t)

		source.EXPECT().FetchGeoLocation(mock.Anything, "k").
			Return(domain.Document{"city": []any{}, "adcode": []any{}}, nil)

		_, err := svc.LocalWeather(context.Background(), "k")
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
		source.AssertNotCalled(t, "FetchWeather", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("geolocation failure", func(t *testing.T) {
		svc, source := newWeatherService(t)

		source.EXPECT().FetchGeoLocation(mock.Anything, "k").
			Return(nil, domain.NewUnavailableError("amap", "unexpected HTTP 500"))

		_, err := svc.LocalWeather(context.Background(), "k")
		require.Error(t, err)
		assert.True(t, domain.IsUnavailable(err))
		assert.Contains(t, err.Error(), "resolving location")
	})
}
