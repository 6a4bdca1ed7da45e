package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Pricing  PricingConfig
	Currency CurrencyConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Pricing.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STYLECART_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"STYLECART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STYLECART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects and tunes the persistent key/value backend.
type StorageConfig struct {
	Backend string `envconfig:"STYLECART_STORAGE_BACKEND" default:"sqlite"`
	Path    string `envconfig:"STYLECART_STORAGE_PATH" default:"stylecart.db"`

	RedisURL      string `envconfig:"STYLECART_REDIS_URL"`
	RedisPassword string `envconfig:"STYLECART_REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"STYLECART_REDIS_DB" default:"0"`
}

func (s StorageConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(s.Backend)) {
	case StorageBackendSQLite:
		if strings.TrimSpace(s.Path) == "" {
			return fmt.Errorf("%s is required for the sqlite backend", EnvStoragePath)
		}
	case StorageBackendRedis:
		if strings.TrimSpace(s.RedisURL) == "" {
			return fmt.Errorf("%s is required for the redis backend", EnvRedisURL)
		}
	case StorageBackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", s.Backend)
	}
	return nil
}

// PricingConfig carries the totals-derivation knobs. Defaults mirror the
// storefront's launch behavior: free shipping above 999, flat 99 otherwise,
// 18% tax.
type PricingConfig struct {
	FreeShippingThreshold int64  `envconfig:"STYLECART_FREE_SHIPPING_THRESHOLD" default:"999"`
	FlatShippingFee       int64  `envconfig:"STYLECART_FLAT_SHIPPING_FEE" default:"99"`
	TaxRate               string `envconfig:"STYLECART_TAX_RATE" default:"0.18"`
}

func (p PricingConfig) validate() error {
	if p.FreeShippingThreshold < 0 {
		return fmt.Errorf("free shipping threshold must be non-negative")
	}
	if p.FlatShippingFee < 0 {
		return fmt.Errorf("flat shipping fee must be non-negative")
	}
	return nil
}

type CurrencyConfig struct {
	Default string `envconfig:"STYLECART_DEFAULT_CURRENCY" default:"PKR"`
}
