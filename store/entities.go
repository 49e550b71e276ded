/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"github.com/suparena/coredata/models"
)

// EntitiesKey is the root state key of the entities slice.
const EntitiesKey = "entities"

// EntitiesState maps a kind to the definitions known for it.
type EntitiesState map[string][]models.EntityDefinition

// HasEntitiesByKind reports whether any entity of kind has been loaded.
func (s EntitiesState) HasEntitiesByKind(kind string) bool {
	return len(s[kind]) > 0
}

// ByKind returns the definitions of kind.
func (s EntitiesState) ByKind(kind string) []models.EntityDefinition {
	return s[kind]
}

// Entities returns the entities slice of state.
func Entities(state State) EntitiesState {
	es, _ := state[EntitiesKey].(EntitiesState)
	return es
}

// EntitiesReducer appends the definitions of ADD_ENTITIES, skipping any
// (kind, name) already present. Existing entries are never edited or removed.
func EntitiesReducer(state any, action models.Action) any {
	prev, _ := state.(EntitiesState)
	if prev == nil {
		prev = EntitiesState{}
	}
	if action.Type != models.ActionAddEntities {
		return prev
	}

	next := make(EntitiesState, len(prev)+1)
	for k, v := range prev {
		next[k] = v
	}

	added := false
	for _, def := range action.Entities {
		if containsEntity(next[def.Kind], def) {
			continue
		}
		next[def.Kind] = append(next[def.Kind][:len(next[def.Kind]):len(next[def.Kind])], def)
		added = true
	}
	if !added {
		return prev
	}
	return next
}

func containsEntity(defs []models.EntityDefinition, def models.EntityDefinition) bool {
	for _, d := range defs {
		if d.Same(def) {
			return true
		}
	}
	return false
}
