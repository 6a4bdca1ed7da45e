package config

// EnvPrefix is applied by envconfig on top of the explicit envconfig tags.
const EnvPrefix = "STYLECART"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	StorageBackendSQLite = "sqlite"
	StorageBackendRedis  = "redis"
	StorageBackendMemory = "memory"
)

// Environment variable names referenced in error messages and tests.
const (
	EnvAppEnv      = "STYLECART_APP_ENV"
	EnvLogLevel    = "STYLECART_LOG_LEVEL"
	EnvBackend     = "STYLECART_STORAGE_BACKEND"
	EnvStoragePath = "STYLECART_STORAGE_PATH"
	EnvRedisURL    = "STYLECART_REDIS_URL"
	EnvTaxRate     = "STYLECART_TAX_RATE"
)
