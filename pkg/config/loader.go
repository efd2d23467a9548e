package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.Mutex
	cache  = make(map[reflect.Type]any)
	dotenv sync.Once
)

// Load parses environment variables into a T using `env` struct tags. Values
// from .env files are applied first: the given files, or ./.env when none are
// passed. A missing file is not an error. Each type is parsed once per process;
// later calls return the cached copy.
//
//	type Config struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[Config]()
func Load[T any](files ...string) (T, error) {
	var zero T

	key := reflect.TypeFor[T]()
	if key.Kind() != reflect.Struct {
		return zero, fmt.Errorf("%w: %s", ErrInvalidConfigType, key)
	}

	if err := loadDotenv(files); err != nil {
		return zero, err
	}

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		return cached.(T), nil
	}

	var v T
	if err := env.Parse(&v); err != nil {
		return zero, errors.Join(ErrParsingConfig, err)
	}
	cache[key] = v
	return v, nil
}

// MustLoad is like Load but panics on failure. Use it for configuration the
// process cannot start without.
func MustLoad[T any](files ...string) T {
	v, err := Load[T](files...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return v
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}

func loadDotenv(files []string) error {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	dotenv.Do(func() {
		// ./.env is optional
		_ = godotenv.Load()
	})
	return nil
}
