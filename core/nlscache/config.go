package nlscache

import "time"

// Config holds the configuration for the cache cleaner.
// Designed for environment-based configuration using popular env parsing libraries.
type Config struct {
	Retention       time.Duration `env:"NLS_CACHE_RETENTION" envDefault:"1512h"`
	CheckInterval   time.Duration `env:"NLS_CACHE_CHECK_INTERVAL" envDefault:"24h"`
	ShutdownTimeout time.Duration `env:"NLS_CACHE_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns sensible defaults for production use.
func DefaultConfig() Config {
	return Config{
		Retention:       DefaultRetention,
		CheckInterval:   DefaultCheckInterval,
		ShutdownTimeout: 30 * time.Second,
	}
}
