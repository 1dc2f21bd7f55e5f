package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/homepage-gateway/internal/app"
	"github.com/jsamuelsen/homepage-gateway/internal/domain"
	"github.com/jsamuelsen/homepage-gateway/internal/mocks"
)

func setupPlaylistHandler(t *testing.T) (*PlaylistHandler, *mocks.MockPlaylistSource) {
	t.Helper()

	source := mocks.NewMockPlaylistSource(t)

	return NewPlaylistHandler(app.NewPlaylistService(app.PlaylistServiceConfig{
		Source: source,
		Logger: discardLogger(),
	})), source
}

func TestPlaylistHandler_GetPlaylist(t *testing.T) {
	handler, source := setupPlaylistHandler(t)
	source.EXPECT().FetchPlaylist(mock.Anything, "netease", "playlist", "60198").
		Return([]domain.PlaybackTrack{{Name: "A", Artist: "B", URL: "http://x", Cover: "http://y"}})

	w := serve(t, handler.RegisterPlaylistRoutes, "/api/v1/playlist?server=netease&type=playlist&id=60198")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"A","artist":"B","url":"http://x","cover":"http://y","lrc":""}]`, w.Body.String())
}

func TestPlaylistHandler_GetPlaylist_EmptyIsArray(t *testing.T) {
	handler, source := setupPlaylistHandler(t)
	source.EXPECT().FetchPlaylist(mock.Anything, "", "", "").Return([]domain.PlaybackTrack{})

	w := serve(t, handler.RegisterPlaylistRoutes, "/api/v1/playlist")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestPlaylistHandler_GetPlaylist_UnusualHintsAccepted(t *testing.T) {
	handler, source := setupPlaylistHandler(t)
	longID := strings.Repeat("9", 200)
	source.EXPECT().FetchPlaylist(mock.Anything, "my server", "", longID).
		Return([]domain.PlaybackTrack{{Name: "A", Artist: "B", URL: "http://x"}})

	w := serve(t, handler.RegisterPlaylistRoutes, "/api/v1/playlist?server=my%20server&id="+longID)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"A","artist":"B","url":"http://x","cover":"","lrc":""}]`, w.Body.String())
}
