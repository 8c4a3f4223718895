package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type PostgresConfig struct {
	Enabled  bool   `env:"POSTGRES_ENABLED" envDefault:"false"`
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     string `env:"POSTGRES_PORT" envDefault:"5454"`
	DB       string `env:"POSTGRES_DB" envDefault:"influencer_hub"`
	Username string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"30"`
	MinConns int32  `env:"POSTGRES_MIN_CONNS" envDefault:"5"`
}

type RepositoriesConfig struct {
	Postgres PostgresConfig
}

type JWTConfig struct {
	SecretKey      string        `env:"JWT_SECRET_KEY" envDefault:"default-secret-key-change-in-production-min-32-chars"`
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" envDefault:"24h"`
	Issuer         string        `env:"JWT_ISSUER" envDefault:"influencer-hub"`
}

type SessionConfig struct {
	Name   string        `env:"SESSION_NAME" envDefault:"influencer_session"`
	Secret string        `env:"SESSION_SECRET" envDefault:"change-me-session-secret-32-bytes!"`
	MaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"720h"`
	Secure bool          `env:"SESSION_SECURE" envDefault:"false"`

	// ApplicationsTTL bounds how long per-session campaign applications are kept in memory.
	ApplicationsTTL time.Duration `env:"SESSION_APPLICATIONS_TTL" envDefault:"24h"`
}

// DemoConfig is the single credential pair the login accepts.
// PasswordHash is a bcrypt hash; when empty the hash of "password" is used.
type DemoConfig struct {
	Email        string        `env:"DEMO_EMAIL" envDefault:"demo@example.com"`
	PasswordHash string        `env:"DEMO_PASSWORD_HASH"`
	LoginDelay   time.Duration `env:"LOGIN_DELAY" envDefault:"1s"`
}

type ObservabilityConfig struct {
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"influencer-hub"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"otel-collector:4318"`
	MetricsAddr  string `env:"METRICS_ADDR" envDefault:":9092"`
	PprofAddr    string `env:"PPROF_ADDR" envDefault:":6060"`
}

type Config struct {
	Repositories  RepositoriesConfig
	JWT           JWTConfig
	Session       SessionConfig
	Demo          DemoConfig
	Observability ObservabilityConfig
	ServerPort    string `env:"SERVER_PORT" envDefault:"8091"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Repositories.Postgres.Enabled && cfg.Repositories.Postgres.Password == "" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD environment variable is required when POSTGRES_ENABLED is set")
	}
	if len(cfg.Session.Secret) < 32 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 32 bytes")
	}

	return cfg, nil
}
