package config

import "time"

// RedisConfig contains Redis configuration. Sessions and carts live in Redis
// so the server can restart without signing anyone out.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	DB                 int      `env:"DB"                   envDefault:"0"`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// StorageConfig contains TTLs for the Redis-backed session and cart stores.
type StorageConfig struct {
	// SessionTTL should track the backend's refresh-token lifetime: a session
	// that outlives its refresh token cannot be kept alive anyway.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// CartTTL bounds how long an abandoned cart survives.
	CartTTL time.Duration `env:"CART_TTL" envDefault:"12h"`
}

// Sanitize applies guardrails to storage configuration values.
func (s *StorageConfig) Sanitize() {
	if s.SessionTTL <= 0 {
		s.SessionTTL = 24 * time.Hour
	}
	if s.CartTTL <= 0 {
		s.CartTTL = 12 * time.Hour
	}
}
