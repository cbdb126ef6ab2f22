package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
	OTEL    OTELConfig
	UI      UIConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host         string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port         int           `env:"SERVER_PORT" envDefault:"3000"`
	Env          string        `env:"APP_ENV" envDefault:"development"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	// AllowedOrigins lists other sites that may call in. Empty means
	// same-origin only, for CORS and for unsafe methods alike.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// BackendConfig holds the API collaborator configuration
type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
}

// SessionConfig holds cookie and navigation settings for the signed-in caller
type SessionConfig struct {
	CookieName        string `env:"SESSION_COOKIE_NAME" envDefault:"accessToken"`
	VisitorCookieName string `env:"VISITOR_COOKIE_NAME" envDefault:"tb_visitor"`
	LoginPath         string `env:"LOGIN_PATH" envDefault:"/login"`
	SecureCookies     bool   `env:"SECURE_COOKIES" envDefault:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED" envDefault:"true"`
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	// DraftTTL bounds how long an abandoned review draft is kept.
	DraftTTL time.Duration `env:"REDIS_DRAFT_TTL" envDefault:"24h"`
	// MemoryMaxDrafts caps the in-process fallback used when Redis is off.
	MemoryMaxDrafts int `env:"MEMORY_MAX_DRAFTS" envDefault:"10000"`
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"taste-buddies-web"`
	ServiceVersion string `env:"OTEL_SERVICE_VERSION" envDefault:"1.0.0"`
	Endpoint       string `env:"OTEL_ENDPOINT"`
	Enabled        bool   `env:"OTEL_ENABLED" envDefault:"false"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	AppName       string `env:"APP_NAME" envDefault:"Taste Buddies"`
	HTMXScriptURL string `env:"HTMX_SCRIPT_URL" envDefault:"https://unpkg.com/htmx.org@2.0.4"`
	MessImageURL  string `env:"MESS_IMAGE_URL"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL must not be empty")
	}
	if cfg.Session.CookieName == "" {
		return nil, fmt.Errorf("SESSION_COOKIE_NAME must not be empty")
	}
	return cfg, nil
}

// Addr returns the listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDevelopment reports whether the server runs in development mode
func (c *ServerConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
