package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[drafts]
backend = "redis"
ttl = 600

[redis]
addr = "redis:6379"

[scheduling]
closing_time = "21:00"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "defaults survive partial files")
	assert.Equal(t, DraftBackendRedis, cfg.Drafts.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "21:00", cfg.Scheduling.ClosingTime)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.Scheduling.Timezone)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "[server]\nhttp_port = 7070\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "no backend url", mutate: func(c *Config) { c.Curanest.URL = "" }},
		{name: "unknown draft backend", mutate: func(c *Config) { c.Drafts.Backend = "etcd" }},
		{name: "redis without addr", mutate: func(c *Config) { c.Drafts.Backend = DraftBackendRedis; c.Redis.Addr = "" }},
		{name: "zero ttl", mutate: func(c *Config) { c.Drafts.TTL = 0 }},
		{name: "zero lock wait", mutate: func(c *Config) { c.Drafts.LockWait = 0 }},
		{name: "backend timeout too long", mutate: func(c *Config) { c.Curanest.Timeout = MaxCuranestTimeout + 1 }},
		{name: "bad timezone", mutate: func(c *Config) { c.Scheduling.Timezone = "Mars/Olympus" }},
		{name: "bad clock", mutate: func(c *Config) { c.Scheduling.OpeningTime = "6am" }},
		{name: "inverted hours", mutate: func(c *Config) { c.Scheduling.OpeningTime = "22:00"; c.Scheduling.ClosingTime = "06:00" }},
		{name: "start outside hours", mutate: func(c *Config) { c.Scheduling.DefaultStart = "05:00" }},
	}

	require.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
