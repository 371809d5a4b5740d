package imagecache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFilename(t *testing.T) {
	tests := []struct {
		url     string
		wantExt string
	}{
		{"https://example.com/a.png", ".png"},
		{"https://example.com/a.JPEG", ".jpeg"},
		{"https://example.com/a.webp?size=large", ".webp"},
		{"https://example.com/image", ".jpg"},
		{"https://example.com/a.verylongext", ".jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			name := generateFilename(tt.url)
			assert.True(t, strings.HasSuffix(name, tt.wantExt), name)
			assert.Len(t, strings.TrimSuffix(name, tt.wantExt), 32)
			assert.Equal(t, name, generateFilename(tt.url))
		})
	}
	assert.NotEqual(t, generateFilename("https://a/x.png"), generateFilename("https://b/x.png"))
}

func TestDownloadAndCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("image-bytes"))
	}))
	defer srv.Close()

	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "cache")

	path, err := DownloadAndCache(ctx, srv.URL+"/wall.png", CacheOptions{CacheDir: dir})
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	again, err := DownloadAndCache(ctx, srv.URL+"/wall.png", CacheOptions{CacheDir: dir})
	require.NoError(t, err)
	assert.Equal(t, path, again)
	assert.Equal(t, int32(1), hits.Load())

	_, err = DownloadAndCache(ctx, srv.URL+"/wall.png", CacheOptions{CacheDir: dir, AllowOverwrite: true})
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())

	named, err := DownloadAndCache(ctx, srv.URL+"/wall.png", CacheOptions{CacheDir: dir, Filename: "current.png"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "current.png"), named)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files are renamed into place")

	_, err = DownloadAndCache(ctx, "ftp://example.com/x.png", CacheOptions{CacheDir: dir})
	assert.Error(t, err)
}
