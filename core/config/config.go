package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParseEnv indicates that environment variables could not be parsed into the target struct.
var ErrParseEnv = errors.New("failed to parse environment variables")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> cached config value
)

// Load parses environment variables into cfg, caching the result per concrete type.
// Subsequent calls with the same type receive a copy of the cached value, so the
// environment is read only once per type for the lifetime of the process.
// A .env file in the working directory is loaded before the first parse, if present.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config: nil target")
	}

	// Missing .env files are expected outside development
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseEnv, err)
	}

	cached, _ := cache.LoadOrStore(key, *cfg)
	*cfg = cached.(T)
	return nil
}

// MustLoad is like Load but panics when parsing fails.
// Intended for application startup where a missing required variable is fatal.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}
