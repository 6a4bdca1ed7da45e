package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stylecart/storefront/pkg/config"
	"github.com/stylecart/storefront/pkg/logger"
)

// ErrNotFound is returned when a key has no persisted value.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the opaque persistent key/value surface the storefront writes
// through. It stands in for browser local storage: whole values are replaced
// on every write and the last writer wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Closer is implemented by backends holding external resources.
type Closer interface {
	Close() error
}

// Open builds the backend selected by configuration.
func Open(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case config.StorageBackendSQLite:
		return OpenSQLite(ctx, cfg.Path, logg)
	case config.StorageBackendRedis:
		return OpenRedis(ctx, cfg, logg)
	case config.StorageBackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
