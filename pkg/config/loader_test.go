package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtym/campaign/pkg/config"
)

type cachedConfig struct {
	Value string `env:"CONFIG_TEST_CACHED" envDefault:"default"`
}

type parsedConfig struct {
	Name    string `env:"CONFIG_TEST_NAME" envDefault:"campaign"`
	Port    int    `env:"CONFIG_TEST_PORT" envDefault:"8080"`
	Enabled bool   `env:"CONFIG_TEST_ENABLED" envDefault:"true"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED,required"`
}

type validatedConfig struct {
	BaseURL string `env:"CONFIG_TEST_BASE_URL"`
}

var errMissingBaseURL = errors.New("base url is required")

func (c *validatedConfig) Validate() error {
	if c.BaseURL == "" {
		return errMissingBaseURL
	}
	return nil
}

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg parsedConfig
		require.NoError(t, config.Parse(&cfg))
		assert.Equal(t, parsedConfig{Name: "campaign", Port: 8080, Enabled: true}, cfg)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_PORT", "9090")
		t.Setenv("CONFIG_TEST_ENABLED", "false")

		var cfg parsedConfig
		require.NoError(t, config.Parse(&cfg))
		assert.Equal(t, 9090, cfg.Port)
		assert.False(t, cfg.Enabled)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_PORT", "eighty")

		var cfg parsedConfig
		assert.ErrorIs(t, config.Parse(&cfg), config.ErrParsingConfig)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		assert.ErrorIs(t, config.Parse(&cfg), config.ErrParsingConfig)
	})

	t.Run("validator runs after parsing", func(t *testing.T) {
		var cfg validatedConfig
		err := config.Parse(&cfg)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.ErrorIs(t, err, errMissingBaseURL)

		t.Setenv("CONFIG_TEST_BASE_URL", "https://api.example.com/")
		require.NoError(t, config.Parse(&cfg))
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Parse[parsedConfig](nil), config.ErrNilPointer)
		assert.ErrorIs(t, config.Load[parsedConfig](nil), config.ErrNilPointer)
	})
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("CONFIG_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestMustLoad_Panics(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
