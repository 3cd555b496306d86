package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.Mutex
	cache   = make(map[string]any)

	defaultEnvLoaded sync.Once
)

// Load populates the configuration struct from environment variables based
// on its `env` field tags. The default .env file is loaded once per process
// if present; each configuration type is parsed once and cached, so
// repeated calls for the same type return the same values.
//
// Example:
//
//	type RedisConfig struct {
//	    Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
//	    Password string `env:"REDIS_PASSWORD"`
//	}
//
//	var cfg RedisConfig
//	if err := config.Load(&cfg); err != nil {
//	    // Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional; a missing file is not an error.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if cached, ok := cache[typeName]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// Store a copy so later callers cannot mutate the cached value.
	cache[typeName] = *v
	return nil
}

// getTypeName returns a unique name for the configuration type, including
// its package path to avoid collisions between same-named structs.
func getTypeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return fmt.Sprintf("%v", t)
}
