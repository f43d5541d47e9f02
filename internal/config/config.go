package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Pagination PaginationConfig `yaml:"pagination"`
	Todo       TodoConfig       `yaml:"todo"`
	Note       NoteConfig       `yaml:"note"`
	Comment    CommentConfig    `yaml:"comment"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
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
	HealthCheck     time.Duration `yaml:"health_check"       env:"DATABASE_HEALTH_CHECK"       env-default:"1m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"taskflow"`
}

// AuthConfig holds access token settings. Tokens are issued elsewhere; this
// service only verifies them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"taskflow"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// PaginationConfig bounds the page size of list endpoints.
type PaginationConfig struct {
	DefaultPerPage int `yaml:"default_per_page" env:"PAGINATION_DEFAULT_PER_PAGE" env-default:"20"`
	MaxPerPage     int `yaml:"max_per_page"     env:"PAGINATION_MAX_PER_PAGE"     env-default:"100"`
}

// TodoConfig holds todo retention settings.
type TodoConfig struct {
	PurgeRetentionDays int `yaml:"purge_retention_days" env:"TODO_PURGE_RETENTION_DAYS" env-default:"30"`
}

// NoteConfig holds note revision settings.
type NoteConfig struct {
	MaxRevisions int `yaml:"max_revisions" env:"NOTE_MAX_REVISIONS" env-default:"50"`
}

// CommentConfig holds comment settings.
type CommentConfig struct {
	EditWindow time.Duration `yaml:"edit_window" env:"COMMENT_EDIT_WINDOW" env-default:"15m"`
}

// Origins splits the comma-separated origin list.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits the comma-separated method list.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits the comma-separated header list.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// RateLimitConfig throttles API requests per actor (or per client address for
// anonymous requests). Zero RequestsPerMinute disables the limiter.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"300"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"30"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}
