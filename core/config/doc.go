// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/nlskit/core/config"
//
//	type resolverConfig struct {
//		UserLocale   string `env:"NLS_USER_LOCALE" envDefault:"en"`
//		UserDataPath string `env:"NLS_USER_DATA_PATH,required"`
//		CommitID     string `env:"NLS_COMMIT,required"`
//	}
//
//	func main() {
//		var cfg resolverConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var first resolverConfig
//	config.Load(&first) // Loads from environment
//
//	var second resolverConfig
//	config.Load(&second) // Returns cached value, first == second
//
// Different types are cached independently:
//
//	type cleanerConfig struct {
//		Retention time.Duration `env:"NLS_CACHE_RETENTION" envDefault:"1512h"`
//	}
//
//	type loggerConfig struct {
//		Level string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&cleanerConfig{})
//	config.MustLoad(&loggerConfig{})
package config
