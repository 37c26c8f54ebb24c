// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tomtranjr/msds601-highdim-group9/design"
	"github.com/tomtranjr/msds601-highdim-group9/internal/config"
)

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	require.Equal(t, "127.0.0.1:8080", c.Server.Addr())
	require.Equal(t, 5*time.Second, c.Server.RequestTimeout())
	require.Equal(t, 24*time.Hour, c.Session.TTL())
	require.Equal(t, design.DefaultSourceSeed, c.Seed.SourceSeed())
}

func TestLoad_YAMLOverlay(t *testing.T) {
	t.Setenv(config.EnvHTTPPort, "")
	t.Setenv(config.EnvRedisAddr, "")
	t.Setenv(config.EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "highdim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
session:
  store: redis
redis:
  addr: redis:6379
log:
  level: debug
seed:
  stream: 3
`), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, c.Server.Port)
	require.Equal(t, "127.0.0.1", c.Server.Host, "unset keys keep defaults")
	require.Equal(t, config.StoreRedis, c.Session.Store)
	require.Equal(t, "redis:6379", c.Redis.Addr)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, design.DeriveSeed(design.DefaultSourceSeed, 3), c.Seed.SourceSeed())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [1, 2"), 0o600))
	_, err = config.Load(path)
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.ApplyEnv(envOf(map[string]string{
		config.EnvHTTPPort:  "7000",
		config.EnvRedisAddr: "cache:6379",
		config.EnvLogLevel:  "warn",
	})))
	require.Equal(t, 7000, c.Server.Port)
	require.Equal(t, "cache:6379", c.Redis.Addr)
	require.Equal(t, config.StoreRedis, c.Session.Store)
	require.Equal(t, "warn", c.Log.Level)

	require.ErrorIs(t, c.ApplyEnv(envOf(map[string]string{config.EnvHTTPPort: "http"})), config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"port zero", func(c *config.Config) { c.Server.Port = 0 }},
		{"port too large", func(c *config.Config) { c.Server.Port = 70000 }},
		{"timeout", func(c *config.Config) { c.Server.RequestTimeoutMs = 0 }},
		{"store", func(c *config.Config) { c.Session.Store = "disk" }},
		{"redis addr", func(c *config.Config) { c.Session.Store = config.StoreRedis; c.Redis.Addr = "" }},
		{"cookie", func(c *config.Config) { c.Session.CookieName = "" }},
		{"rate", func(c *config.Config) { c.RateLimit.Burst = -1 }},
		{"level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"format", func(c *config.Config) { c.Log.Format = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			tc.mutate(&c)
			require.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
}
