package gateway

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jsamuelsen/homepage-gateway/internal/domain"
	"github.com/jsamuelsen/homepage-gateway/internal/platform/telemetry"
)

// songSuccessCode is the numeric code the song API reports on success.
const songSuccessCode = 1

// songResponse is the external DTO of the random song API.
type songResponse struct {
	Code any       `json:"code"`
	Data *songData `json:"data"`
}

// songData fields are strings; a payload with other types degrades like any
// other malformed reply.
type songData struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	PicURL      string `json:"picurl"`
	ArtistsName string `json:"artistsname"`
}

// FetchPlaylist fetches one random song and returns it as a playlist.
// The hints are reserved for provider selection and are not used to build
// the request. Failures never propagate: the result is then an empty, non-nil
// slice and the cause is logged.
func (g *Gateway) FetchPlaylist(ctx context.Context, serverHint, typeHint, idHint string) []domain.PlaybackTrack {
	tracks := []domain.PlaybackTrack{}
	service := g.song.ServiceName()

	g.logger.DebugContext(ctx, "fetching playlist",
		slog.String("server", serverHint),
		slog.String("type", typeHint),
		slog.String("id", idHint),
	)

	resp, err := g.song.Get(ctx, g.songURL, nil)
	if err != nil {
		g.logger.ErrorContext(ctx, "playlist request failed",
			slog.String("service", service),
			slog.Any("error", err))
		degrade(service, telemetry.OutcomeTransport)

		return tracks
	}

	if !resp.IsSuccess() {
		g.logger.ErrorContext(ctx, "playlist request returned error status",
			slog.String("service", service),
			slog.Int("status_code", resp.StatusCode))
		degrade(service, telemetry.OutcomeBadStatus)

		return tracks
	}

	var ext songResponse

	err = json.Unmarshal(resp.Body, &ext)
	if err != nil {
		g.logger.ErrorContext(ctx, "playlist response is not valid JSON",
			slog.String("service", service),
			slog.Any("error", err))
		degrade(service, telemetry.OutcomeBadPayload)

		return tracks
	}

	if !isSongSuccess(ext.Code) || ext.Data == nil {
		g.logger.ErrorContext(ctx, "playlist response has unexpected shape",
			slog.String("service", service),
			slog.Any("code", ext.Code),
			slog.Bool("has_data", ext.Data != nil))
		degrade(service, telemetry.OutcomeBadPayload)

		return tracks
	}

	countCall(service, opPlaylist, telemetry.OutcomeSuccess)

	return append(tracks, translateSong(ext.Data))
}

func degrade(service, reason string) {
	countCall(service, opPlaylist, reason)
	telemetry.PlaylistDegraded.WithLabelValues(reason).Inc()
}

// isSongSuccess reports whether code is the number 1. String codes do not count.
func isSongSuccess(code any) bool {
	n, ok := code.(float64)

	return ok && n == songSuccessCode
}

// translateSong converts the external song payload to a domain track.
func translateSong(data *songData) domain.PlaybackTrack {
	return domain.PlaybackTrack{
		Name:   data.Name,
		Artist: data.ArtistsName,
		URL:    data.URL,
		Cover:  data.PicURL,
		Lrc:    "",
	}
}
