package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexcloud/entitlements/pkg/config"
)

type testConfig struct {
	Name    string `env:"CONFIG_TEST_NAME" envDefault:"cortexcloud"`
	Retries int    `env:"CONFIG_TEST_RETRIES" envDefault:"3"`
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_MISSING_SECRET,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "cortexcloud", cfg.Name)
	assert.Equal(t, 3, cfg.Retries)
}

func TestLoad_EnvOverride(t *testing.T) {
	type overrideConfig struct {
		Addr string `env:"CONFIG_TEST_ADDR" envDefault:"localhost:6379"`
	}

	t.Setenv("CONFIG_TEST_ADDR", "redis:6380")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "redis:6380", cfg.Addr)
}

func TestLoad_CachesPerType(t *testing.T) {
	var first testConfig
	require.NoError(t, config.Load(&first))

	// A later env change is not observed: the type was parsed once.
	t.Setenv("CONFIG_TEST_NAME", "changed")

	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoad_NilPointer(t *testing.T) {
	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoad_RequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}
