/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/coredata/errors"
	"github.com/suparena/coredata/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coredata.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Persistence.Backend)
	assert.Equal(t, "preferences", cfg.Persistence.ReducerKey)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}

func TestLoadFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
api:
  url: https://example.org/wp-json
  timeout: 5s
persistence:
  backend: redis
  storageKey: core/edit-post
  reducerKey: preferences
  redis:
    addr: localhost:6379
    ttl: 1h
entities:
  - kind: root
    name: user
    baseUrl: /wp/v2/users
preferences:
  mode: visual
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/wp-json", cfg.API.URL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, BackendRedis, cfg.Persistence.Backend)
	assert.Equal(t, time.Hour, cfg.Persistence.Redis.TTL)
	require.Len(t, cfg.Entities, 1)
	assert.Equal(t, "/wp/v2/users", cfg.Entities[0].BaseURL)
	assert.Equal(t, "visual", cfg.Preferences["mode"])
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("COREDATA_API_URL", "https://env.example/wp-json")
	t.Setenv("COREDATA_BACKEND", BackendDynamoDB)
	t.Setenv("AWS_DDB_TABLE", "prefs")
	t.Setenv("AWS_REGION", "us-east-1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://env.example/wp-json", cfg.API.URL)
	assert.Equal(t, "prefs", cfg.Persistence.DynamoDB.Table)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("COREDATA_STORAGE_KEY=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("COREDATA_STORAGE_KEY") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Persistence.StorageKey)
}

func TestLoadErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("BadYAML", func(t *testing.T) {
		_, err := Load(writeConfig(t, "api: [unclosed"))
		assert.True(t, errors.IsParse(err))
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("BadRedisDB", func(t *testing.T) {
		t.Setenv("COREDATA_REDIS_DB", "zero")
		_, err := Load("")
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty url", func(c *Config) { c.API.URL = "" }},
		{"empty storage key", func(c *Config) { c.Persistence.StorageKey = "" }},
		{"empty reducer key", func(c *Config) { c.Persistence.ReducerKey = "" }},
		{"unknown backend", func(c *Config) { c.Persistence.Backend = "sqlite" }},
		{"redis without addr", func(c *Config) { c.Persistence.Backend = BackendRedis }},
		{"dynamodb without table", func(c *Config) {
			c.Persistence.Backend = BackendDynamoDB
			c.Persistence.DynamoDB.Region = "us-east-1"
		}},
		{"dynamodb without region", func(c *Config) {
			c.Persistence.Backend = BackendDynamoDB
			c.Persistence.DynamoDB.Table = "prefs"
		}},
		{"entity without name", func(c *Config) {
			c.Entities = []models.EntityDefinition{{Kind: models.KindRoot}}
		}},
	}

	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.True(t, errors.IsValidationError(cfg.Validate()))
		})
	}
}
