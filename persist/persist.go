/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"github.com/suparena/coredata/datastore"
	"github.com/suparena/coredata/errors"
	"github.com/suparena/coredata/internal/logging"
	"github.com/suparena/coredata/internal/metrics"
	"github.com/suparena/coredata/models"
	"github.com/suparena/coredata/store"
)

type options struct {
	log     logr.Logger
	metrics *metrics.Metrics
	onError func(error)
}

// Option configures LoadAndPersist.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithMetrics records persistence writes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// OnError sets the handler of errors raised while persisting after a
// dispatch. By default they are logged.
func OnError(f func(error)) Option {
	return func(o *options) {
		o.onError = f
	}
}

// LoadAndPersist restores the slice at reducerKey from kv and keeps kv up to
// date as the slice changes. It must run after the store is constructed with
// a reducer wrapped by WithRehydration for the same storageKey.
//
// ctx bounds the initial read. Later writes keep its values but not its
// cancellation or deadline, so a request-scoped ctx does not stop persisting.
// The returned function stops persisting.
func LoadAndPersist(ctx context.Context, st *store.Store, reducer store.Reducer, reducerKey, storageKey string, kv datastore.KeyValue, opts ...Option) (func(), error) {
	if reducerKey == "" {
		return nil, errors.NewValidationError("reducerKey", "must not be empty")
	}
	if storageKey == "" {
		return nil, errors.NewValidationError("storageKey", "must not be empty")
	}

	o := options{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.onError == nil {
		o.onError = func(err error) {
			o.log.Error(err, "Failed to persist state", "storageKey", storageKey)
		}
	}

	persisted, ok, err := kv.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read persisted state %q: %w", storageKey, err)
	}
	if ok && persisted != "" {
		var stored map[string]any
		if err := json.Unmarshal([]byte(persisted), &stored); err != nil {
			return nil, errors.NewParseError(fmt.Sprintf("storage key %q", storageKey), err)
		}

		defaults, _ := store.GetPath(reducer(nil, models.Action{Type: models.ActionInit}), reducerKey).(map[string]any)
		st.Dispatch(models.Rehydrate(storageKey, store.ShallowMerge(defaults, stored)))
		o.log.V(1).Info("Rehydrated state", "storageKey", storageKey, "reducerKey", reducerKey)
		o.log.V(2).Info("Rehydrated payload", "storageKey", storageKey, "payload", logging.JSON(stored))
	}

	writeCtx := context.WithoutCancel(ctx)
	var mu sync.Mutex
	current := store.GetPath(st.GetState(), reducerKey)

	unsubscribe := st.Subscribe(func() {
		mu.Lock()
		defer mu.Unlock()

		state := st.GetState()
		next := store.GetPath(state, reducerKey)
		if store.SameRef(next, current) {
			return
		}
		current = next

		err := write(writeCtx, kv, storageKey, store.GetPath(reducer(state, models.Action{Type: models.ActionSerialize}), reducerKey))
		o.metrics.PersistWrite(storageKey, err)
		if err != nil {
			o.onError(err)
		}
	})
	return unsubscribe, nil
}

func write(ctx context.Context, kv datastore.KeyValue, storageKey string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal state %q: %w", storageKey, err)
	}
	if err := kv.Set(ctx, storageKey, string(data)); err != nil {
		return fmt.Errorf("failed to write state %q: %w", storageKey, err)
	}
	return nil
}
