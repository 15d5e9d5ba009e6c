package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Blob     BlobConfig     `yaml:"blob"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Limits   LimitsConfig   `yaml:"limits"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer         string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"grow"`
	AccessTokenTTL    time.Duration `yaml:"access_token_ttl"    env:"AUTH_ACCESS_TOKEN_TTL"    env-default:"15m"`
	RefreshTokenTTL   time.Duration `yaml:"refresh_token_ttl"   env:"AUTH_REFRESH_TOKEN_TTL"   env-default:"720h"`
	PasswordHashCost  int           `yaml:"password_hash_cost"  env:"AUTH_PASSWORD_HASH_COST"  env-default:"12"`
	PasswordMinLength int           `yaml:"password_min_length" env:"AUTH_PASSWORD_MIN_LENGTH" env-default:"8"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// BlobConfig holds image storage settings. Paths stored in the database are
// relative to RootDir.
type BlobConfig struct {
	RootDir         string        `yaml:"root_dir"         env:"BLOB_ROOT_DIR"         env-default:"./media"`
	TempPrefix      string        `yaml:"temp_prefix"      env:"BLOB_TEMP_PREFIX"      env-default:"temp_submissions"`
	PermanentPrefix string        `yaml:"permanent_prefix" env:"BLOB_PERMANENT_PREFIX" env-default:"plants"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"BLOB_MAX_UPLOAD_BYTES" env-default:"10485760"`
	OrphanAge       time.Duration `yaml:"orphan_age"       env:"BLOB_ORPHAN_AGE"       env-default:"168h"`
}

// RedisConfig holds the plant detail cache settings. An empty URL disables
// the cache.
type RedisConfig struct {
	URL      string        `yaml:"url"       env:"REDIS_URL"`
	PlantTTL time.Duration `yaml:"plant_ttl" env:"REDIS_PLANT_TTL" env-default:"10m"`
}

// Enabled reports whether a Redis URL is configured.
func (c RedisConfig) Enabled() bool { return c.URL != "" }

// KafkaConfig holds moderation event publishing settings. An empty broker
// list disables publishing.
type KafkaConfig struct {
	BrokersRaw string `yaml:"brokers" env:"KAFKA_BROKERS"`
	Topic      string `yaml:"topic"   env:"KAFKA_TOPIC"   env-default:"plant-moderation"`
}

// Brokers returns the configured broker addresses.
func (c KafkaConfig) Brokers() []string {
	var out []string
	for _, b := range strings.Split(c.BrokersRaw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// Enabled reports whether at least one broker is configured.
func (c KafkaConfig) Enabled() bool { return len(c.Brokers()) > 0 }

// CatalogConfig holds public catalog listing settings.
type CatalogConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"CATALOG_DEFAULT_PAGE_SIZE" env-default:"20"`
	MaxPageSize     int `yaml:"max_page_size"     env:"CATALOG_MAX_PAGE_SIZE"     env-default:"100"`
}

// LimitsConfig holds per-IP request limits for the write-heavy public
// routes. Zero disables a limit.
type LimitsConfig struct {
	AuthPerMinute       int `yaml:"auth_per_minute"       env:"LIMITS_AUTH_PER_MINUTE"       env-default:"10"`
	SubmissionPerMinute int `yaml:"submission_per_minute" env:"LIMITS_SUBMISSION_PER_MINUTE" env-default:"20"`
}
