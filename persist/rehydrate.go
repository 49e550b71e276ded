/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package persist

import (
	"sync"

	"github.com/suparena/coredata/internal/logging"
	"github.com/suparena/coredata/models"
	"github.com/suparena/coredata/store"
)

// WithRehydration returns reducer enhanced so that a rehydrate action for
// storageKey replaces the slice at reducerKey with the action payload.
// All other actions are delegated unchanged.
func WithRehydration(reducer store.Reducer, reducerKey, storageKey string) store.Reducer {
	return func(state store.State, action models.Action) store.State {
		next := reducer(state, action)

		if action.Type == models.ActionRehydrate && action.StorageKey == storageKey {
			return store.SetPath(next, reducerKey, action.Payload)
		}
		return next
	}
}

var rehydratationOnce sync.Once

// WithRehydratation is a misspelling of WithRehydration kept for backwards
// compatibility.
//
// Deprecated: Use WithRehydration.
func WithRehydratation(reducer store.Reducer, reducerKey, storageKey string) store.Reducer {
	rehydratationOnce.Do(func() {
		logging.Log().Info("persist.WithRehydratation is deprecated, use persist.WithRehydration instead")
	})
	return WithRehydration(reducer, reducerKey, storageKey)
}
