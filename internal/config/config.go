package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Boards    BoardsConfig    `yaml:"boards"`
	Features  FeaturesConfig  `yaml:"features"`
	Redis     RedisConfig     `yaml:"redis"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
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
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"boards"`
}

// AuthConfig describes the host's actor tokens.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"scheduler"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig bounds requests per client IP.
type RateLimitConfig struct {
	Enabled       bool          `yaml:"enabled"         env:"RATE_LIMIT_ENABLED"         env-default:"true"`
	PerMinute     int           `yaml:"per_minute"      env:"RATE_LIMIT_PER_MINUTE"      env-default:"600"`
	CleanupPeriod time.Duration `yaml:"cleanup_period"  env:"RATE_LIMIT_CLEANUP_PERIOD"  env-default:"5m"`
}

// BoardsConfig tunes the boards feature itself.
type BoardsConfig struct {
	PositionStep        int64 `yaml:"position_step"         env:"BOARDS_POSITION_STEP"         env-default:"1024"`
	ActivityPageSize    int   `yaml:"activity_page_size"    env:"BOARDS_ACTIVITY_PAGE_SIZE"    env-default:"50"`
	ActivityMaxPageSize int   `yaml:"activity_max_page_size" env:"BOARDS_ACTIVITY_MAX_PAGE_SIZE" env-default:"200"`
	SeedDefaults        bool  `yaml:"seed_defaults"         env:"BOARDS_SEED_DEFAULTS"         env-default:"true"`
}

// Feature sources.
const (
	FeatureSourceStatic   = "static"
	FeatureSourcePostgres = "postgres"
	FeatureSourceRedis    = "redis"
)

// FeaturesConfig selects where the licensed feature list is read from.
type FeaturesConfig struct {
	Source      string        `yaml:"source"       env:"FEATURES_SOURCE"       env-default:"postgres"`
	Static      string        `yaml:"static"       env:"FEATURES_STATIC"       env-default:""`
	SettingsKey string        `yaml:"settings_key" env:"FEATURES_SETTINGS_KEY" env-default:"license_features"`
	CacheTTL    time.Duration `yaml:"cache_ttl"    env:"FEATURES_CACHE_TTL"    env-default:"30s"`
	DenyURL     string        `yaml:"deny_url"     env:"FEATURES_DENY_URL"     env-default:"/"`
	Required    string        `yaml:"required"     env:"FEATURES_REQUIRED"     env-default:"boards"`
}

// RedisConfig holds the connection used by the redis feature source.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB" env-default:"0"`
}
