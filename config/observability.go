package config

import (
	"strings"
	"time"
)

// ObservabilityConfig groups configuration that controls metrics, logging,
// and outage notifications.
type ObservabilityConfig struct {
	Metrics ObservabilityMetricsConfig
	Notify  NotifyConfig

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFormat is "json" or "text".
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Sanitize applies guardrails to observability sub-configs.
func (c *ObservabilityConfig) Sanitize() {
	c.Metrics.Sanitize()
	c.Notify.Sanitize()

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = "info"
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != "text" {
		c.LogFormat = "json"
	}
}

// ObservabilityMetricsConfig controls emission of metrics to external sinks such as StatsD.
type ObservabilityMetricsConfig struct {
	Enabled       bool   `env:"OBSERVABILITY_METRICS_ENABLED"        envDefault:"false"`
	StatsdAddress string `env:"OBSERVABILITY_METRICS_STATSD_ADDRESS" envDefault:"127.0.0.1:8125"`
}

// Sanitize normalises derived fields and enforces safe defaults.
func (c *ObservabilityMetricsConfig) Sanitize() {
	c.StatsdAddress = strings.TrimSpace(c.StatsdAddress)
	if c.StatsdAddress == "" {
		c.Enabled = false
	}
}

// IsEnabled returns true when metrics emission is active after sanitisation.
func (c *ObservabilityMetricsConfig) IsEnabled() bool {
	return c.Enabled && c.StatsdAddress != ""
}

// NotifyConfig controls outage notifications. Leaving the webhook empty
// disables them.
type NotifyConfig struct {
	SlackWebhookURL string        `env:"NOTIFY_SLACK_WEBHOOK_URL"`
	SlackChannel    string        `env:"NOTIFY_SLACK_CHANNEL"`
	Cooldown        time.Duration `env:"NOTIFY_COOLDOWN" envDefault:"5m"`
}

// Sanitize normalises webhook settings and clamps the cooldown.
func (c *NotifyConfig) Sanitize() {
	c.SlackWebhookURL = strings.TrimSpace(c.SlackWebhookURL)
	c.SlackChannel = strings.TrimSpace(c.SlackChannel)
	if c.Cooldown <= 0 {
		c.Cooldown = 5 * time.Minute
	}
}
