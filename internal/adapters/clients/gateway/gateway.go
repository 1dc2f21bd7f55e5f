package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen/homepage-gateway/internal/adapters/clients"
	"github.com/jsamuelsen/homepage-gateway/internal/domain"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/config"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/logging"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/telemetry"
)

// Upstream paths relative to each service's base URL.
const (
	hitokotoPath       = "/"
	nsmaoQuotePath     = "/api/quotes/query"
	nsmaoWeatherPath   = "/api/weather/query"
	amapIPPath         = "/v3/ip"
	amapWeatherPath    = "/v3/weather/weatherInfo"
	oiowebWeatherPath  = "/api/weather/GetWeather"
	queryParamKey      = "key"
	queryParamCityCode = "city"
)

var (
	errNullDocument = errors.New("body is null, want a JSON object")
	errTrailingData = errors.New("unexpected data after the JSON object")
)

// Operation names used in logs and metrics.
const (
	opPlaylist         = "playlist"
	opQuote            = "quote"
	opUserQuote        = "user_quote"
	opGeoLocation      = "geolocation"
	opWeather          = "weather"
	opAlternateWeather = "alternate_weather"
	opUserWeather      = "user_weather"
)

// Config wires the gateway to one client per upstream service.
type Config struct {
	// Song fetches the random song endpoint at SongURL.
	Song *clients.Client
	// SongURL is the absolute song endpoint, used verbatim including its query string.
	SongURL string

	Hitokoto *clients.Client
	Nsmao    *clients.Client
	Amap     *clients.Client
	Oioweb   *clients.Client

	// NsmaoKey is the access key embedded in nsmao quote and weather requests.
	NsmaoKey string

	// Logger is the structured logger. Defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// Gateway implements the upstream ports of the application services.
// It holds no mutable state and is safe for concurrent use.
type Gateway struct {
	song     *clients.Client
	songURL  string
	hitokoto *clients.Client
	nsmao    *clients.Client
	amap     *clients.Client
	oioweb   *clients.Client
	nsmaoKey string
	logger   *slog.Logger
}

// New creates a gateway from pre-built clients.
// Panics if any client is nil.
func New(cfg Config) *Gateway {
	for name, c := range map[string]*clients.Client{
		"Song":     cfg.Song,
		"Hitokoto": cfg.Hitokoto,
		"Nsmao":    cfg.Nsmao,
		"Amap":     cfg.Amap,
		"Oioweb":   cfg.Oioweb,
	} {
		if c == nil {
			panic("gateway: " + name + " client is required")
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Gateway{
		song:     cfg.Song,
		songURL:  cfg.SongURL,
		hitokoto: cfg.Hitokoto,
		nsmao:    cfg.Nsmao,
		amap:     cfg.Amap,
		oioweb:   cfg.Oioweb,
		nsmaoKey: cfg.NsmaoKey,
		logger:   logger.With(slog.String("component", "gateway")),
	}
}

// NewFromConfig builds one client per configured upstream service and wires
// them into a gateway.
func NewFromConfig(client config.ClientConfig, services config.ServicesConfig, logger *slog.Logger) (*Gateway, error) {
	build := func(endpoint config.ServiceEndpointConfig, withBase bool) (*clients.Client, error) {
		cfg := &clients.Config{
			ServiceName: endpoint.Name,
			Timeout:     client.Timeout,
			Transport:   client.Transport,
			Logger:      logger,
		}
		if withBase {
			cfg.BaseURL = endpoint.BaseURL
		}

		c, err := clients.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("creating %s client: %w", endpoint.Name, err)
		}

		return c, nil
	}

	song, err := build(services.Song, false)
	if err != nil {
		return nil, err
	}

	hitokoto, err := build(services.Hitokoto, true)
	if err != nil {
		return nil, err
	}

	nsmao, err := build(services.Nsmao, true)
	if err != nil {
		return nil, err
	}

	amap, err := build(services.Amap, true)
	if err != nil {
		return nil, err
	}

	oioweb, err := build(services.Oioweb, true)
	if err != nil {
		return nil, err
	}

	return New(Config{
		Song:     song,
		SongURL:  services.Song.BaseURL,
		Hitokoto: hitokoto,
		Nsmao:    nsmao,
		Amap:     amap,
		Oioweb:   oioweb,
		NsmaoKey: services.Nsmao.Key,
		Logger:   logger,
	}), nil
}

// getDocument performs one GET and decodes the body as an opaque JSON object.
// Every failure is reported as an unavailable error for the client's service.
func (g *Gateway) getDocument(ctx context.Context, op string, client *clients.Client, path string, query url.Values) (domain.Document, error) {
	service := client.ServiceName()
	g.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("service", service),
		slog.String("operation", op),
		slog.String("path", path))

	resp, err := client.Get(ctx, path, query)
	if err != nil {
		countCall(service, op, telemetry.OutcomeTransport)
		return nil, domain.WrapUnavailable(service, err)
	}

	if !resp.IsSuccess() {
		statusErr := clients.NewStatusError(service, resp)
		g.logger.WarnContext(ctx, "upstream error",
			slog.String("service", service),
			slog.Int("status_code", resp.StatusCode),
			slog.String("body", statusErr.Body),
		)

		countCall(service, op, telemetry.OutcomeBadStatus)

		return nil, domain.WrapUnavailable(service, statusErr)
	}

	doc, err := decodeDocument(resp.Body)
	if err != nil {
		countCall(service, op, telemetry.OutcomeBadPayload)
		return nil, domain.WrapUnavailable(service, fmt.Errorf("decoding %s response: %w", service, err))
	}

	countCall(service, op, telemetry.OutcomeSuccess)

	return doc, nil
}

// decodeDocument decodes a JSON object body. Numbers are kept as json.Number
// so large integers are re-served unchanged. A literal null is rejected.
func decodeDocument(body []byte) (domain.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc domain.Document

	err := dec.Decode(&doc)
	if err != nil {
		return nil, err
	}

	if dec.More() {
		return nil, errTrailingData
	}

	if doc == nil {
		return nil, errNullDocument
	}

	return doc, nil
}

// invalidArgs records and returns a validation failure raised before any
// request is made.
func invalidArgs(client *clients.Client, op, field string) error {
	countCall(client.ServiceName(), op, telemetry.OutcomeInvalidArgs)

	return domain.NewValidationError(field, "is required")
}

func countCall(service, op, outcome string) {
	telemetry.UpstreamCalls.WithLabelValues(service, op, outcome).Inc()
}

// keyQuery returns a query carrying an access key.
func keyQuery(key string) url.Values {
	return url.Values{queryParamKey: {key}}
}
