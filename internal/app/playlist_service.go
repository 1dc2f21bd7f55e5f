package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/homepage-gateway/internal/domain"
	"github.com/jsamuelsen/homepage-gateway/internal/ports"
)

// PlaylistService feeds the music player.
type PlaylistService struct {
	source ports.PlaylistSource
	logger *slog.Logger
}

// PlaylistServiceConfig contains configuration for the playlist service.
type PlaylistServiceConfig struct {
	Source ports.PlaylistSource
	Logger *slog.Logger
}

// NewPlaylistService creates a new playlist service.
// Panics if Source is nil. Defaults logger to slog.Default() if nil.
func NewPlaylistService(cfg PlaylistServiceConfig) *PlaylistService {
	if cfg.Source == nil {
		panic("PlaylistService: Source is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &PlaylistService{
		source: cfg.Source,
		logger: logger,
	}
}

// Playlist returns the current tracks. It never fails; an unavailable
// upstream yields an empty playlist.
func (s *PlaylistService) Playlist(ctx context.Context, server, typ, id string) []domain.PlaybackTrack {
	tracks := s.source.FetchPlaylist(ctx, server, typ, id)
	if tracks == nil {
		tracks = []domain.PlaybackTrack{}
	}

	s.logger.DebugContext(ctx, "fetched playlist", slog.Int("tracks", len(tracks)))

	return tracks
}
