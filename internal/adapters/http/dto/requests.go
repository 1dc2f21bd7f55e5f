package dto

import (
	"github.com/jsamuelsen/homepage-gateway/internal/app"
	"github.com/jsamuelsen/homepage-gateway/internal/domain"
)

// PlaylistQuery carries the provider hints of GET /api/v1/playlist.
// The hints are passed along unvalidated and never change the request made.
type PlaylistQuery struct {
	Server string `form:"server"`
	Type   string `form:"type"`
	ID     string `form:"id"`
}

// KeyQuery carries the caller-supplied amap key.
// Presence is checked by the gateway so the error names the apiKey field.
type KeyQuery struct {
	Key string `form:"key" validate:"omitempty,max=128,querytoken"`
}

// WeatherQuery carries the parameters of GET /api/v1/weather.
type WeatherQuery struct {
	Key  string `form:"key"  validate:"omitempty,max=128,querytoken"`
	City string `form:"city" validate:"omitempty,max=128,querytoken"`
}

// SectionError is the error carried by a homepage section that failed.
type SectionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HomeResponse is the body of GET /api/v1/home. A failed section is null and
// its error is listed under errors by section name.
type HomeResponse struct {
	Playlist []domain.PlaybackTrack  `json:"playlist"`
	Quote    domain.QuoteRecord      `json:"quote"`
	Weather  domain.WeatherReport    `json:"weather"`
	Errors   map[string]SectionError `json:"errors,omitempty"`
}

// NewHomeResponse converts a snapshot into its wire form.
func NewHomeResponse(snap *app.HomeSnapshot) *HomeResponse {
	resp := &HomeResponse{
		Playlist: snap.Playlist,
		Quote:    snap.Quote,
		Weather:  snap.Weather,
	}

	if resp.Playlist == nil {
		resp.Playlist = []domain.PlaybackTrack{}
	}

	for section, err := range map[string]error{"quote": snap.QuoteErr, "weather": snap.WeatherErr} {
		if err == nil {
			continue
		}

		if resp.Errors == nil {
			resp.Errors = make(map[string]SectionError)
		}

		mapped := MapError(err)
		resp.Errors[section] = SectionError{Code: mapped.Error.Code, Message: mapped.Error.Message}
	}

	return resp
}
