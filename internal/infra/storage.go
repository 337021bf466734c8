package infra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

var ErrObjectNotFound = errors.New("object not found")

type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
	Metadata    map[string]string
}

// ObjectStorage is a bucket addressed by object key.
type ObjectStorage interface {
	Save(ctx context.Context, key string, body io.Reader, contentType string, metadata map[string]string) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Download(ctx context.Context, key string) (*Object, error)
	Remove(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

func NewObjectStorage(ctx context.Context, cfg *Config, logger *zap.Logger) (ObjectStorage, error) {
	switch cfg.Storage.Provider {
	case "s3", "r2":
		logger.Info("using S3 compatible object storage", zap.String("bucket", cfg.Storage.Bucket))
		return NewS3Storage(cfg.Storage)
	case "gcs":
		logger.Info("using Google Cloud Storage", zap.String("bucket", cfg.Storage.Bucket))
		return NewGCSStorage(ctx, cfg.Storage)
	case "memory":
		logger.Warn("using in-memory object storage, uploads are lost on restart")
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Storage.Provider)
	}
}
