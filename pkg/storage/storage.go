// Package storage keeps evidence files outside the database.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"uatf-curricular/backend/config"
)

// ErrNotFound no object under the given key
var ErrNotFound = errors.New("storage: object not found")

// Storage opaque blob store. Put returns the key the bytes can be read back with.
type Storage interface {
	Put(ctx context.Context, r io.Reader, key string) (string, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// New builds the backend selected by cfg.Driver
func New(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (Storage, error) {
	switch cfg.Driver {
	case "local":
		s, err := NewLocalStorage(cfg.LocalRoot)
		if err != nil {
			return nil, err
		}
		logger.Info("storage ready", zap.String("driver", "local"), zap.String("root", s.root))
		return s, nil
	case "gcs":
		s, err := NewGCSStorage(ctx, cfg.GCSBucket, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		logger.Info("storage ready", zap.String("driver", "gcs"), zap.String("bucket", cfg.GCSBucket))
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
