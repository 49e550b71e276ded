/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package models

// KindRoot is the kind of the statically declared entities.
const KindRoot = "root"

// KindPostType is the kind whose entities are loaded from the post types endpoint.
const KindPostType = "postType"

// DefaultIDField is the record identifier used when an entity declares no Key.
const DefaultIDField = "id"

// EntityDefinition describes how to address a REST collection and how to name
// the accessors generated for it.
type EntityDefinition struct {
	// Kind groups related entities (e.g. "root", "postType").
	Kind string `json:"kind" yaml:"kind"`
	// Name is unique within Kind.
	Name string `json:"name" yaml:"name"`
	// Plural is the optional plural form used for accessor naming.
	Plural string `json:"plural,omitempty" yaml:"plural,omitempty"`
	// Key names the field identifying records. Empty means DefaultIDField.
	Key string `json:"key,omitempty" yaml:"key,omitempty"`
	// BaseURL is the REST collection path for this entity's records.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// IDField returns the field that uniquely identifies records of this entity.
func (e EntityDefinition) IDField() string {
	if e.Key == "" {
		return DefaultIDField
	}
	return e.Key
}

// Same reports whether e and other share the (kind, name) identity.
func (e EntityDefinition) Same(other EntityDefinition) bool {
	return e.Kind == other.Kind && e.Name == other.Name
}
