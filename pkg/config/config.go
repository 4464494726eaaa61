// Package config loads environment-based configuration structs.
//
// Load parses env-tagged struct fields using caarlos0/env, after loading a
// .env file once per process if one exists. Loaded configs are cached by type
// so repeated calls across packages return the same values without re-parsing
// the environment. Reset drops the cache for tests.
package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu    sync.Mutex
	cache = make(map[string]any)

	loadDotEnv sync.Once
)

// Load parses environment variables into cfg.
// The first call for a given struct type does the actual parsing; later calls
// return the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	loadDotEnv.Do(func() {
		// The .env file is optional; absence is not an error.
		_ = godotenv.Load()
	})

	name := reflect.TypeOf(*cfg).String()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[name]; ok {
		typed, ok := cached.(T)
		if !ok {
			return ErrInvalidConfigType
		}
		*cfg = typed
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cache[name] = *cfg
	return nil
}

// MustLoad is like Load but panics on error. Intended for process startup
// where a missing required variable should prevent boot.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Reset clears the config cache. Intended for tests that mutate the
// environment between cases.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache = make(map[string]any)
}
