package sitelinks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/homepage-gateway/internal/domain"
)

const validLinks = `[
  {"name": "Blog", "link": "https://blog.example.com", "icon": "mdi:post"},
  {"name": "GitHub", "link": "https://github.com", "icon": "mdi:github"}
]`

func writeLinks(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "siteLinks.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Valid(t *testing.T) {
	links, err := Load(writeLinks(t, validLinks))
	require.NoError(t, err)

	assert.Equal(t, []domain.SiteLink{
		{Name: "Blog", Link: "https://blog.example.com", Icon: "mdi:post"},
		{Name: "GitHub", Link: "https://github.com", Icon: "mdi:github"},
	}, links)
}

func TestLoad_EmptyArray(t *testing.T) {
	links, err := Load(writeLinks(t, `[]`))
	require.NoError(t, err)

	assert.NotNil(t, links)
	assert.Empty(t, links)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantInvalid bool
		wantMessage []string
	}{
		{
			name:        "malformed JSON",
			content:     `[{"name": "Blog",`,
			wantMessage: []string{"decoding site links"},
		},
		{
			name:        "object instead of array",
			content:     `{"name": "Blog"}`,
			wantMessage: []string{"decoding site links"},
		},
		{
			name:        "missing icon",
			content:     `[{"name": "Blog", "link": "https://blog.example.com"}]`,
			wantInvalid: true,
			wantMessage: []string{"entry 1", "icon is required"},
		},
		{
			name: "bad URL in second entry",
			content: `[
				{"name": "Blog", "link": "https://blog.example.com", "icon": "a"},
				{"name": "Broken", "link": "not a url", "icon": "b"}
			]`,
			wantInvalid: true,
			wantMessage: []string{"entry 2", "link must be a valid URL"},
		},
		{
			name:        "several problems are all reported",
			content:     `[{"link": "https://a.example"}, {"name": "x", "icon": "y"}]`,
			wantInvalid: true,
			wantMessage: []string{"entry 1", "name is required", "icon is required", "entry 2", "link is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeLinks(t, tt.content))
			require.Error(t, err)

			assert.Equal(t, tt.wantInvalid, errors.Is(err, ErrInvalidLinks))
			for _, msg := range tt.wantMessage {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestStore_ReadsFileOnEveryCall(t *testing.T) {
	path := writeLinks(t, validLinks)
	store := NewStore(path)

	links, err := store.Links(context.Background())
	require.NoError(t, err)
	assert.Len(t, links, 2)

	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Only","link":"https://only.example","icon":"i"}]`), 0o600))

	links, err = store.Links(context.Background())
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "Only", links[0].Name)
}

func TestStore_CancelledContext(t *testing.T) {
	store := NewStore(writeLinks(t, validLinks))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Links(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_HealthCheck(t *testing.T) {
	store := NewStore(writeLinks(t, validLinks))

	assert.Equal(t, "site-links", store.Name())
	assert.NoError(t, store.Check(context.Background()))

	broken := NewStore(writeLinks(t, `[{"name":""}]`))
	assert.ErrorIs(t, broken.Check(context.Background()), ErrInvalidLinks)

	missing := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, missing.Check(context.Background()))
}
