package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/stylecart/storefront/pkg/config"
	"github.com/stylecart/storefront/pkg/logger"
)

const keyNamespace = "stylecart"

// Redis persists values in a shared Redis instance. Values have no TTL; like
// local storage they live until overwritten or deleted.
type Redis struct {
	raw *redis.Client
}

// OpenRedis connects and verifies connectivity.
func OpenRedis(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (*Redis, error) {
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("redis url is required")
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}
	if cfg.RedisDB != 0 {
		opts.DB = cfg.RedisDB
	}

	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	if logg != nil {
		logg.Info(ctx, "redis store opened")
	}
	return &Redis{raw: raw}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.raw.Get(ctx, namespaced(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.raw.Set(ctx, namespaced(key), value, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.raw.Del(ctx, namespaced(key)).Err()
}

// Close releases the connection pool.
func (r *Redis) Close() error {
	return r.raw.Close()
}

func namespaced(key string) string {
	return keyNamespace + ":" + key
}
