package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> loaded config value
)

// Load parses environment variables into cfg. The first call for a given
// type parses the environment (loading .env files beforehand); subsequent
// calls for the same type return the cached value.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// Missing .env files are not an error.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", key, err)
	}

	cache.Store(key, *cfg)
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
