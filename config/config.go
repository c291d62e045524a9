package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - http.go: HTTP server and cookie configuration
//   - backend.go: POS backend API configuration
//   - redis.go: Redis configuration for session and cart storage
//   - observability.go: Metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior (template reloading, relaxed
	// cookie flags). Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// HTTP server configuration
	HTTP HTTPConfig

	// POS backend API configuration
	Backend BackendConfig

	// Redis configuration
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Session and cart storage configuration
	Storage StorageConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Backend.Sanitize()
	c.Storage.Sanitize()
	c.Observability.Sanitize()

	c.detectDevMode()

	// Local development runs over plain HTTP.
	if c.IsDev {
		c.HTTP.SecureCookies = false
	}
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
