package config

import (
	"strings"
	"time"
)

// BackendConfig contains configuration for the POS backend API that owns all
// business data. Every screen in this application is a view over its
// responses.
type BackendConfig struct {
	// BaseURL is the root of the backend API (e.g., "https://api.minegocio.com/api").
	BaseURL string `env:"POS_API_BASE_URL" envDefault:"http://localhost:8000/api"`

	// Timeout bounds a single backend request.
	Timeout time.Duration `env:"POS_API_TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.BaseURL = strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
	if b.Timeout <= 0 {
		b.Timeout = 15 * time.Second
	}
}
