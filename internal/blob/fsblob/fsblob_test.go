package fsblob

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-app/internal/blob"
)

func TestPutGetRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "1700000000000-opera.jpg", strings.NewReader("dati immagine"), "image/jpeg"))

	obj, err := s.Get(ctx, "1700000000000-opera.jpg")
	require.NoError(t, err)
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "dati immagine", string(data))
	assert.Equal(t, "image/jpeg", obj.ContentType)
	assert.Equal(t, int64(len("dati immagine")), obj.Size)
}

func TestGetMissingObject(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "unknown.jpg")
	assert.ErrorIs(t, err, blob.ErrNotFound)
}

func TestContentTypeFallsBackToExtension(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "senza-meta.png", strings.NewReader("x"), ""))

	obj, err := s.Get(ctx, "senza-meta.png")
	require.NoError(t, err)
	defer obj.Body.Close()
	assert.Equal(t, "image/png", obj.ContentType)
}

func TestRejectsPathEscapes(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	assert.Error(t, s.Put(ctx, "../fuori.jpg", strings.NewReader("x"), "image/jpeg"))
	assert.Error(t, s.Put(ctx, "", strings.NewReader("x"), "image/jpeg"))

	_, err = s.Get(ctx, "../fuori.jpg")
	assert.ErrorIs(t, err, blob.ErrNotFound)
}
