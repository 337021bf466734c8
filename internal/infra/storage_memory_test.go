package infra

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStorage()

	require.NoError(t, s.Save(ctx, "media/a.png1", strings.NewReader("png"), "image/png", map[string]string{"mediaId": "a.png1"}))

	ok, err := s.Exists(ctx, "media/a.png1")
	require.NoError(t, err)
	assert.True(t, ok)

	url, err := s.SignedURL(ctx, "media/a.png1", time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "media/a.png1")

	obj, err := s.Download(ctx, "media/a.png1")
	require.NoError(t, err)
	data, _ := io.ReadAll(obj.Body)
	assert.Equal(t, "png", string(data))
	assert.Equal(t, "image/png", obj.ContentType)

	require.NoError(t, s.Remove(ctx, "media/a.png1"))
	assert.ErrorIs(t, s.Remove(ctx, "media/a.png1"), ErrObjectNotFound)
	_, err = s.Download(ctx, "media/a.png1")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestNewObjectStorage_UnknownProvider(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{Provider: "ftp"}}
	_, err := NewObjectStorage(context.Background(), cfg, zapNop())
	assert.Error(t, err)
}
