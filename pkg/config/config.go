package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Storage       StorageConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Admin         AdminConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Settings      SettingsConfig
	Purchase      PurchaseConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GP_APP_ENV" required:"true"`
	Port         string `envconfig:"GP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects the blob backend the JSON documents live in.
// The file backend is meant for local development; redis is the hosted setup.
type StorageConfig struct {
	Backend     string `envconfig:"GP_STORAGE_BACKEND" default:"file"`
	DataDir     string `envconfig:"GP_STORAGE_DATA_DIR" default:"./data"`
	SettingsKey string `envconfig:"GP_STORAGE_SETTINGS_KEY" default:"settings.json"`
	ProductsKey string `envconfig:"GP_STORAGE_PRODUCTS_KEY" default:"products.json"`
}

func (s StorageConfig) UsesRedis() bool {
	return strings.EqualFold(s.Backend, StorageBackendRedis)
}

func (s *StorageConfig) validate() error {
	switch strings.ToLower(s.Backend) {
	case StorageBackendFile, StorageBackendRedis:
		return nil
	}
	return fmt.Errorf("unknown storage backend %q (want %s or %s)", s.Backend, StorageBackendFile, StorageBackendRedis)
}

type RedisConfig struct {
	URL          string        `envconfig:"GP_REDIS_URL"`
	Address      string        `envconfig:"GP_REDIS_ADDR"`
	Password     string        `envconfig:"GP_REDIS_PASSWORD"`
	DB           int           `envconfig:"GP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether a redis connection can be attempted at all.
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"GP_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"GP_JWT_ISSUER" default:"gurnee-peptides"`
	ExpirationMinutes int    `envconfig:"GP_JWT_EXPIRATION_MINUTES" default:"10080"`
}

// TokenTTL returns the access token lifetime; the admin cookie shares it.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// AdminConfig carries the single admin identity the storefront knows about.
// PasswordHash wins over Password; Password is hashed at boot for dev setups.
type AdminConfig struct {
	Email        string `envconfig:"GP_ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"GP_ADMIN_PASSWORD_HASH"`
	Password     string `envconfig:"GP_ADMIN_PASSWORD"`
	CookieName   string `envconfig:"GP_ADMIN_COOKIE_NAME" default:"gp_auth"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GP_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GP_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GP_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GP_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GP_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"GP_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"GP_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"GP_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type SettingsConfig struct {
	CacheTTL time.Duration `envconfig:"GP_SETTINGS_CACHE_TTL" default:"30s"`
}

// PurchaseConfig holds the storefront-wide purchase instructions attached to
// every catalog item. Content lives in config because purchasing happens
// off-platform over Messenger/email and the copy changes without deploys.
type PurchaseConfig struct {
	Headline string `envconfig:"GP_PURCHASE_HEADLINE" default:"How to Purchase"`
	Facebook string `envconfig:"GP_PURCHASE_FACEBOOK_URL"`
	Email    string `envconfig:"GP_PURCHASE_EMAIL"`
	Note     string `envconfig:"GP_PURCHASE_NOTE" default:"Message us on Facebook to purchase. If unavailable, email us directly."`
}
