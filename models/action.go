/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

// Action types understood by the store and the persistence layer.
const (
	ActionAddEntities = "ADD_ENTITIES"
	ActionRehydrate   = "REDUX_REHYDRATE"
	ActionSerialize   = "SERIALIZE"
	ActionInit        = "@@gutenberg/init"
)

// Action is dispatched to a store and handed to every reducer.
type Action struct {
	Type string `json:"type"`
	// StorageKey is set on rehydrate actions.
	StorageKey string `json:"storageKey,omitempty"`
	// Payload is the rehydrated subtree.
	Payload any `json:"payload,omitempty"`
	// Entities is set on ADD_ENTITIES.
	Entities []EntityDefinition `json:"entities,omitempty"`
}

// AddEntities returns an ADD_ENTITIES action carrying entities.
func AddEntities(entities []EntityDefinition) Action {
	return Action{Type: ActionAddEntities, Entities: entities}
}

// Rehydrate returns a REDUX_REHYDRATE action for storageKey.
func Rehydrate(storageKey string, payload any) Action {
	return Action{Type: ActionRehydrate, StorageKey: storageKey, Payload: payload}
}

// ActionUpdatePreferences merges Payload (a map) into the preferences slice.
const ActionUpdatePreferences = "UPDATE_PREFERENCES"

// UpdatePreferences returns an UPDATE_PREFERENCES action.
func UpdatePreferences(values map[string]any) Action {
	return Action{Type: ActionUpdatePreferences, Payload: values}
}
