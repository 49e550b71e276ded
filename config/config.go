/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads coredata configuration from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/coredata/errors"
	"github.com/suparena/coredata/models"
)

// Durable storage backends.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendBadger   = "badger"
	BackendDynamoDB = "dynamodb"
)

// Config is the complete client configuration.
type Config struct {
	API         APIConfig                 `yaml:"api"`
	Persistence PersistenceConfig         `yaml:"persistence"`
	Entities    []models.EntityDefinition `yaml:"entities,omitempty"`
	Preferences map[string]any            `yaml:"preferences,omitempty"`
}

// APIConfig addresses the REST API.
type APIConfig struct {
	URL     string        `yaml:"url"`
	Nonce   string        `yaml:"nonce,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// PersistenceConfig selects and configures durable storage.
type PersistenceConfig struct {
	Backend    string         `yaml:"backend"`
	StorageKey string         `yaml:"storageKey"`
	ReducerKey string         `yaml:"reducerKey"`
	Redis      RedisConfig    `yaml:"redis,omitempty"`
	Badger     BadgerConfig   `yaml:"badger,omitempty"`
	DynamoDB   DynamoDBConfig `yaml:"dynamodb,omitempty"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password,omitempty"`
	DB       int           `yaml:"db,omitempty"`
	Prefix   string        `yaml:"prefix,omitempty"`
	TTL      time.Duration `yaml:"ttl,omitempty"`
}

// BadgerConfig configures the badger backend. An empty Path is in-memory.
type BadgerConfig struct {
	Path string `yaml:"path,omitempty"`
}

// DynamoDBConfig configures the dynamodb backend.
type DynamoDBConfig struct {
	Table     string `yaml:"table"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		API: APIConfig{
			URL:     "http://localhost:8080/wp-json",
			Timeout: 30 * time.Second,
		},
		Persistence: PersistenceConfig{
			Backend:    BackendMemory,
			StorageKey: "WP_DATA_USER_1",
			ReducerKey: "preferences",
		},
	}
}

// Load reads .env (if present), the YAML file at path (if not empty), then
// applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.NewParseError("config "+path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(env string, dst *string) {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*dst = v
		}
	}

	setString("COREDATA_API_URL", &c.API.URL)
	setString("COREDATA_API_NONCE", &c.API.Nonce)
	setString("COREDATA_BACKEND", &c.Persistence.Backend)
	setString("COREDATA_STORAGE_KEY", &c.Persistence.StorageKey)
	setString("COREDATA_REDIS_ADDR", &c.Persistence.Redis.Addr)
	setString("COREDATA_REDIS_PASSWORD", &c.Persistence.Redis.Password)
	setString("COREDATA_BADGER_PATH", &c.Persistence.Badger.Path)
	setString("AWS_ACCESS_KEY", &c.Persistence.DynamoDB.AccessKey)
	setString("AWS_SECRET_KEY", &c.Persistence.DynamoDB.SecretKey)
	setString("AWS_REGION", &c.Persistence.DynamoDB.Region)
	setString("AWS_DDB_TABLE", &c.Persistence.DynamoDB.Table)

	if v := os.Getenv("COREDATA_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return errors.NewValidationError("COREDATA_REDIS_DB", fmt.Sprintf("not a number: %q", v))
		}
		c.Persistence.Redis.DB = db
	}
	return nil
}

// Validate checks the configuration for missing or inconsistent settings.
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return errors.NewValidationError("api.url", "must not be empty")
	}
	p := c.Persistence
	if p.StorageKey == "" {
		return errors.NewValidationError("persistence.storageKey", "must not be empty")
	}
	if p.ReducerKey == "" {
		return errors.NewValidationError("persistence.reducerKey", "must not be empty")
	}

	switch p.Backend {
	case BackendMemory, BackendBadger:
	case BackendRedis:
		if p.Redis.Addr == "" {
			return errors.NewValidationError("persistence.redis.addr", "required for the redis backend")
		}
	case BackendDynamoDB:
		if p.DynamoDB.Table == "" {
			return errors.NewValidationError("persistence.dynamodb.table", "required for the dynamodb backend")
		}
		if p.DynamoDB.Region == "" {
			return errors.NewValidationError("persistence.dynamodb.region", "required for the dynamodb backend")
		}
	default:
		return errors.NewValidationError("persistence.backend", fmt.Sprintf("unknown backend %q", p.Backend))
	}

	for _, e := range c.Entities {
		if e.Kind == "" || e.Name == "" {
			return errors.NewValidationError("entities", "every entity needs a kind and a name")
		}
	}
	return nil
}
