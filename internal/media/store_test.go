package media

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pngData  = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"
	jpegData = "\xff\xd8\xff\xe0\x00\x10JFIF"
)

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	fs := afero.NewMemMapFs()
	store, err := NewStore(fs, "/srv/media", "http://localhost:8000/media/", logger)
	require.NoError(t, err)
	return store, fs
}

func TestUploadAndDestroy(t *testing.T) {
	store, fs := newTestStore(t)
	ctx := context.Background()

	img, err := store.Upload(ctx, "Photo.JPG", strings.NewReader(jpegData))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(img.ID, ".jpg"))
	assert.Equal(t, "http://localhost:8000/media/"+img.ID, img.URL)

	data, err := afero.ReadFile(fs, "/srv/media/"+img.ID)
	require.NoError(t, err)
	assert.Equal(t, jpegData, string(data))

	require.NoError(t, store.Destroy(ctx, img.ID))
	exists, err := afero.Exists(fs, "/srv/media/"+img.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// already gone
	assert.NoError(t, store.Destroy(ctx, img.ID))
}

func TestDestroyRejectsPaths(t *testing.T) {
	store, fs := newTestStore(t)
	require.NoError(t, afero.WriteFile(fs, "/srv/secret", []byte("x"), 0o644))

	err := store.Destroy(context.Background(), "../secret", "")
	assert.ErrorIs(t, err, ErrInvalidID)

	exists, _ := afero.Exists(fs, "/srv/secret")
	assert.True(t, exists)
}

func TestUploadCanceled(t *testing.T) {
	store, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Upload(ctx, "a.png", strings.NewReader(pngData))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSystemServesUploads(t *testing.T) {
	store, _ := newTestStore(t)
	img, err := store.Upload(context.Background(), "a.png", strings.NewReader(pngData))
	require.NoError(t, err)

	srv := httptest.NewServer(http.FileServer(store.FileSystem()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/" + img.ID)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, pngData, string(body))
}

func TestUploadRejectsNonImages(t *testing.T) {
	store, fs := newTestStore(t)

	_, err := store.Upload(context.Background(), "avatar.html", strings.NewReader("<html><script>alert(1)</script></html>"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = store.Upload(context.Background(), "photo.jpg", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	files, err := afero.ReadDir(fs, "/srv/media")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestUploadExtensionFollowsContent(t *testing.T) {
	store, _ := newTestStore(t)
	img, err := store.Upload(context.Background(), "x.html", strings.NewReader(pngData))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(img.ID, ".png"))

	srv := httptest.NewServer(http.FileServer(store.FileSystem()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/" + img.ID)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}
