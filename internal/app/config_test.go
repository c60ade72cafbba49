package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")

	cfg, err := LoadConfig([]string{})
	require.NoError(t, err)

	assert.Equal(t, defaultAddr, cfg.Addr)
	assert.Equal(t, "Coffee Shop", cfg.Author)
	assert.False(t, cfg.StrictValidation)
	assert.Equal(t, 100, cfg.RateLimit.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 3*time.Second, cfg.Graceful.ReadinessDelay)
	assert.Equal(t, 15*time.Second, cfg.Graceful.ShutdownTimeout)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")
	t.Setenv("COFFEE_AUTHOR", "Barista Bob")
	t.Setenv("COFFEE_STRICT_VALIDATION", "true")
	t.Setenv("COFFEE_RATE_LIMIT_MAX", "5")

	cfg, err := LoadConfig([]string{})
	require.NoError(t, err)

	assert.Equal(t, "Barista Bob", cfg.Author)
	assert.True(t, cfg.StrictValidation)
	assert.Equal(t, 5, cfg.RateLimit.Max)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("COFFEE_RATE_LIMIT_MAX", "0")

	_, err := LoadConfig([]string{})
	require.Error(t, err)
}

func TestApplyPlatformDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg := Config{Addr: defaultAddr}
	cfg.applyPlatformDefaults()
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr)

	cfg = Config{Addr: "127.0.0.1:7000"}
	cfg.applyPlatformDefaults()
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
}
