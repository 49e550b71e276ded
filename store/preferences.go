/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"github.com/suparena/coredata/models"
)

// PreferencesKey is the root state key of the preferences slice.
const PreferencesKey = "preferences"

// PreferencesReducer returns a slice reducer for user preferences starting
// from defaults. UPDATE_PREFERENCES shallow-merges its payload.
func PreferencesReducer(defaults map[string]any) SliceReducer {
	return func(state any, action models.Action) any {
		prev, ok := state.(map[string]any)
		if !ok {
			prev = ShallowMerge(defaults, nil)
		}
		if action.Type != models.ActionUpdatePreferences {
			return prev
		}
		values, ok := action.Payload.(map[string]any)
		if !ok || len(values) == 0 {
			return prev
		}
		return ShallowMerge(prev, values)
	}
}
