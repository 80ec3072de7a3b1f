package config

// Environment variable names shared between Load, tests, and ops tooling.
const (
	EnvPrefix = "GP"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	StorageBackendFile  = "file"
	StorageBackendRedis = "redis"

	EnvAppEnv         = "GP_APP_ENV"
	EnvPort           = "GP_APP_PORT"
	EnvStorageBackend = "GP_STORAGE_BACKEND"
	EnvDataDir        = "GP_STORAGE_DATA_DIR"
	EnvRedisURL       = "GP_REDIS_URL"
	EnvJWTSecret      = "GP_JWT_SECRET"
	EnvJWTIssuer      = "GP_JWT_ISSUER"
	EnvJWTExpMins     = "GP_JWT_EXPIRATION_MINUTES"
	EnvAdminEmail     = "GP_ADMIN_EMAIL"
	EnvAdminPassword  = "GP_ADMIN_PASSWORD"
	EnvAdminHash      = "GP_ADMIN_PASSWORD_HASH"
)
