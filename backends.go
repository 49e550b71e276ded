/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package coredata

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/coredata/config"
	"github.com/suparena/coredata/datastore"
	"github.com/suparena/coredata/datastore/badger"
	"github.com/suparena/coredata/datastore/ddb"
	"github.com/suparena/coredata/datastore/redis"
	"github.com/suparena/coredata/errors"
)

// Backends is a thread-safe set of named durable storage backends.
type Backends struct {
	mu     sync.RWMutex
	stores map[string]datastore.KeyValue
}

// NewBackends creates an empty set.
func NewBackends() *Backends {
	return &Backends{
		stores: make(map[string]datastore.KeyValue),
	}
}

// Register stores kv under name.
func (b *Backends) Register(name string, kv datastore.KeyValue) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.stores[name]; exists {
		return errors.NewAlreadyExistsError("backend", name)
	}
	b.stores[name] = kv
	return nil
}

// Get retrieves the backend registered under name.
func (b *Backends) Get(name string) (datastore.KeyValue, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	kv, exists := b.stores[name]
	if !exists {
		return nil, fmt.Errorf("backend %q: %w", name, errors.ErrNotFound)
	}
	return kv, nil
}

// Names returns the registered names, sorted.
func (b *Backends) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.stores))
	for name := range b.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close closes every backend holding resources.
func (b *Backends) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var errs []error
	for name, kv := range b.stores {
		if c, ok := kv.(datastore.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close backend %q: %w", name, err))
			}
		}
	}
	b.stores = make(map[string]datastore.KeyValue)
	return stderrors.Join(errs...)
}

// OpenBackend opens the durable storage selected by cfg.
// The memory backend is an in-memory badger database.
func OpenBackend(ctx context.Context, cfg config.PersistenceConfig) (datastore.KeyValue, error) {
	switch cfg.Backend {
	case config.BackendMemory, config.BackendBadger:
		kv, err := badger.Open(badger.Options{Path: cfg.Badger.Path, InMemory: cfg.Backend == config.BackendMemory})
		if err != nil {
			return nil, err
		}
		return kv, nil
	case config.BackendRedis:
		var opts []redis.Option
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		if cfg.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.Redis.TTL))
		}
		return redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...), nil
	case config.BackendDynamoDB:
		d := cfg.DynamoDB
		kv, err := ddb.NewKeyValueStoreFromCredentials(ctx, d.AccessKey, d.SecretKey, d.Region, d.Table)
		if err != nil {
			return nil, err
		}
		return kv, nil
	default:
		return nil, errors.NewValidationError("backend", fmt.Sprintf("unknown backend %q", cfg.Backend))
	}
}
