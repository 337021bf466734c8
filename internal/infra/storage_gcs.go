package infra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSStorage struct {
	client *storage.Client
	bucket *storage.BucketHandle
}

func NewGCSStorage(ctx context.Context, cfg StorageConfig) (*GCSStorage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("STORAGE_BUCKET is not set")
	}

	var opts []option.ClientOption
	if cfg.GCSCredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.GCSCredentialsJSON)))
	}
	if cfg.GCSProjectID != "" {
		opts = append(opts, option.WithQuotaProject(cfg.GCSProjectID))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}
	return &GCSStorage{client: client, bucket: client.Bucket(cfg.Bucket)}, nil
}

func (g *GCSStorage) Save(ctx context.Context, key string, body io.Reader, contentType string, metadata map[string]string) error {
	w := g.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = metadata
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return fmt.Errorf("write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close object %s: %w", key, err)
	}
	return nil
}

func (g *GCSStorage) SignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	url, err := g.bucket.SignedURL(key, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("sign %s: %w", key, err)
	}
	return url, nil
}

func (g *GCSStorage) Download(ctx context.Context, key string) (*Object, error) {
	r, err := g.bucket.Object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("read object %s: %w", key, err)
	}
	return &Object{
		Body:        r,
		ContentType: r.Attrs.ContentType,
		Size:        r.Attrs.Size,
	}, nil
}

func (g *GCSStorage) Remove(ctx context.Context, key string) error {
	if err := g.bucket.Object(key).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

func (g *GCSStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := g.bucket.Object(key).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat object %s: %w", key, err)
	}
	return true, nil
}

func (g *GCSStorage) Close() error {
	return g.client.Close()
}
