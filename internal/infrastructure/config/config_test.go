package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Generator.Model)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Generator.BaseURL)
	assert.InDelta(t, 0.1, cfg.Generator.Temperature, 1e-9)
	assert.Equal(t, 20*time.Second, cfg.Generator.Timeout)
	assert.False(t, cfg.Generator.Available())
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, CacheDriverMemory, cfg.Cache.Driver)
	assert.Equal(t, 1, cfg.Search.DefaultMealCount)
	assert.Equal(t, time.Second, cfg.DedupWindow)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test_key_123456")
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("APP_SEARCH_MAX_MATCH_RESULTS", "5")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.True(t, cfg.Generator.Available())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, 5, cfg.Search.MaxMatchResults)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	require.NoError(t, os.Unsetenv("REDIS_ADDR"))
	t.Cleanup(func() { _ = os.Unsetenv("REDIS_ADDR") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("REDIS_ADDR=cache.internal:6380\n"), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", cfg.Cache.RedisAddr)
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: 8080, MaxBodyBytes: 1024},
			Generator: GeneratorConfig{Timeout: time.Second},
			Queue:     QueueConfig{Workers: 1, MaxSize: 1},
			Search:    SearchConfig{DefaultMealCount: 1},
		}
	}
	require.NoError(t, validateConfig(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "port", mutate: func(c *Config) { c.Server.Port = 0 }},
		{name: "queue workers", mutate: func(c *Config) { c.Queue.Workers = 0 }},
		{name: "queue size", mutate: func(c *Config) { c.Queue.MaxSize = -1 }},
		{name: "unknown cache driver", mutate: func(c *Config) {
			c.Cache = CacheConfig{Enabled: true, Driver: "memcached", TTL: time.Minute}
		}},
		{name: "memory cache size", mutate: func(c *Config) {
			c.Cache = CacheConfig{Enabled: true, Driver: CacheDriverMemory, TTL: time.Minute, CleanupInterval: time.Minute}
		}},
		{name: "cache ttl", mutate: func(c *Config) {
			c.Cache = CacheConfig{Enabled: true, Driver: CacheDriverRedis, RedisAddr: "x:1"}
		}},
		{name: "rate limit", mutate: func(c *Config) { c.RateLimit = RateLimitConfig{Enabled: true} }},
		{name: "generator timeout", mutate: func(c *Config) { c.Generator.Timeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}
