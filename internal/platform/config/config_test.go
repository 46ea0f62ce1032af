package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.RatesCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.RatesProviderTimeout)
	assert.Equal(t, "60-M", cfg.PublicRateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("PORT", "9090")
	t.Setenv("USE_IN_MEMORY_STORE", "true")
	t.Setenv("LOCAL_STORE_PATH", "  ")
	t.Setenv("RATES_CACHE_TTL", "90m")
	t.Setenv("RATES_PROVIDER_TIMEOUT", "nonsense")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://graceblooms.in, https://admin.graceblooms.in,")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.UseInMemoryStore)
	assert.Empty(t, cfg.LocalStorePath, "blank path runs headless")
	assert.Equal(t, 90*time.Minute, cfg.RatesCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.RatesProviderTimeout)
	assert.Equal(t, []string{"https://graceblooms.in", "https://admin.graceblooms.in"}, cfg.CORSAllowedOrigins)
}
