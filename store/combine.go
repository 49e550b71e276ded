/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"sort"

	"github.com/suparena/coredata/models"
)

// SliceReducer reduces one top-level key of the root state.
type SliceReducer func(state any, action models.Action) any

// Combine builds a root Reducer from per-key slice reducers. The previous
// root map is returned when no slice changed reference.
func Combine(slices map[string]SliceReducer) Reducer {
	keys := make([]string, 0, len(slices))
	for k := range slices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return func(state State, action models.Action) State {
		changed := state == nil
		next := make(State, len(state)+len(keys))
		for k, v := range state {
			next[k] = v
		}
		for _, k := range keys {
			prev := state[k]
			v := slices[k](prev, action)
			if !SameRef(prev, v) {
				changed = true
			}
			next[k] = v
		}
		if !changed {
			return state
		}
		return next
	}
}
