package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"travelling/internal/infra"
	"travelling/internal/models/response_models"
	mem "travelling/pkg/memcache"
	"travelling/pkg/utils"
)

const mediaPrefix = "media/"

// UploadFile is one part of a multipart upload.
type UploadFile struct {
	Name        string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

type MediaServiceInterface interface {
	Upload(ctx context.Context, files []UploadFile) ([]response_models.MediaResponse, error)
	SignedURL(ctx context.Context, mediaID string) (string, error)
	Download(ctx context.Context, mediaID string) (*infra.Object, error)
	Delete(ctx context.Context, mediaID string) error

	// ResolveURL turns a stored media reference into a signed URL. Failures
	// are logged and yield "".
	ResolveURL(ctx context.Context, ref string) string
	ResolveURLs(ctx context.Context, refs []string) []string
	// RemoveRefs deletes every referenced object, logging failures.
	RemoveRefs(ctx context.Context, refs ...string)
}

type MediaService struct {
	storage  infra.ObjectStorage
	cache    mem.SignedURLStore
	urlTTL   time.Duration
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewMediaService(storage infra.ObjectStorage, cache mem.SignedURLStore, cfg *infra.Config, logger *zap.Logger) MediaServiceInterface {
	ttl := cfg.Storage.SignedURLTTL
	if ttl <= 0 {
		ttl = 3 * time.Hour
	}
	cacheTTL := ttl - 5*time.Minute
	if cacheTTL <= 0 {
		cacheTTL = ttl / 2
	}
	return &MediaService{
		storage:  storage,
		cache:    cache,
		urlTTL:   ttl,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// MediaID extracts the media id from a bare id or any URL containing
// "/media/<id>".
func MediaID(ref string) string {
	ref = strings.TrimSpace(ref)
	if i := strings.LastIndex(ref, "/"+mediaPrefix); i >= 0 {
		ref = ref[i+len(mediaPrefix)+1:]
	} else {
		ref = strings.TrimPrefix(ref, mediaPrefix)
	}
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	return ref
}

func mediaKey(mediaID string) string {
	return mediaPrefix + mediaID
}

func (m *MediaService) Upload(ctx context.Context, files []UploadFile) ([]response_models.MediaResponse, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files", utils.ErrInvalidInput)
	}

	result := make([]response_models.MediaResponse, 0, len(files))
	for _, f := range files {
		name := path.Base(strings.ReplaceAll(f.Name, "\\", "/"))
		if name == "." || name == "/" || name == "" {
			name = "file"
		}
		// The random suffix keeps same-named files uploaded in the same
		// millisecond from overwriting each other.
		mediaID := fmt.Sprintf("%s%d-%s", name, m.now().UnixMilli(), uuid.NewString()[:8])
		key := mediaKey(mediaID)

		body, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
		}
		err = m.storage.Save(ctx, key, body, f.ContentType, map[string]string{
			"mediaId":     mediaID,
			"contentType": f.ContentType,
		})
		_ = body.Close()
		if err != nil {
			m.logger.Error("media upload failed", zap.String("key", key), zap.Error(err))
			return nil, utils.ErrStorageUnavailable
		}

		url, err := m.sign(ctx, key)
		if err != nil {
			return nil, err
		}
		result = append(result, response_models.MediaResponse{URL: url, MediaID: mediaID})
	}
	return result, nil
}

func (m *MediaService) sign(ctx context.Context, key string) (string, error) {
	if url, ok := m.cache.Get(key); ok {
		return url, nil
	}
	url, err := m.storage.SignedURL(ctx, key, m.urlTTL)
	if err != nil {
		if errors.Is(err, infra.ErrObjectNotFound) {
			return "", utils.ErrMediaNotFound
		}
		m.logger.Error("signing media url failed", zap.String("key", key), zap.Error(err))
		return "", utils.ErrStorageUnavailable
	}
	m.cache.Set(key, url, m.cacheTTL)
	return url, nil
}

func (m *MediaService) SignedURL(ctx context.Context, mediaID string) (string, error) {
	key := mediaKey(MediaID(mediaID))
	if _, ok := m.cache.Get(key); !ok {
		exists, err := m.storage.Exists(ctx, key)
		if err != nil {
			m.logger.Error("media lookup failed", zap.String("key", key), zap.Error(err))
			return "", utils.ErrStorageUnavailable
		}
		if !exists {
			return "", utils.ErrMediaNotFound
		}
	}
	return m.sign(ctx, key)
}

func (m *MediaService) Download(ctx context.Context, mediaID string) (*infra.Object, error) {
	obj, err := m.storage.Download(ctx, mediaKey(MediaID(mediaID)))
	if err != nil {
		if errors.Is(err, infra.ErrObjectNotFound) {
			return nil, utils.ErrMediaNotFound
		}
		m.logger.Error("media download failed", zap.String("mediaId", mediaID), zap.Error(err))
		return nil, utils.ErrStorageUnavailable
	}
	return obj, nil
}

func (m *MediaService) Delete(ctx context.Context, mediaID string) error {
	key := mediaKey(MediaID(mediaID))
	m.cache.Delete(key)
	if err := m.storage.Remove(ctx, key); err != nil {
		if errors.Is(err, infra.ErrObjectNotFound) {
			return utils.ErrMediaNotFound
		}
		m.logger.Error("media delete failed", zap.String("key", key), zap.Error(err))
		return utils.ErrStorageUnavailable
	}
	return nil
}

func (m *MediaService) ResolveURL(ctx context.Context, ref string) string {
	id := MediaID(ref)
	if id == "" {
		return ""
	}
	url, err := m.sign(ctx, mediaKey(id))
	if err != nil {
		m.logger.Warn("unresolvable media reference", zap.String("ref", ref), zap.Error(err))
		return ""
	}
	return url
}

func (m *MediaService) ResolveURLs(ctx context.Context, refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if url := m.ResolveURL(ctx, ref); url != "" {
			out = append(out, url)
		}
	}
	return out
}

func (m *MediaService) RemoveRefs(ctx context.Context, refs ...string) {
	for _, ref := range refs {
		id := MediaID(ref)
		if id == "" {
			continue
		}
		if err := m.Delete(ctx, id); err != nil {
			m.logger.Warn("failed to remove media from storage", zap.String("mediaId", id), zap.Error(err))
		}
	}
}
