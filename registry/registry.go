/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/suparena/coredata/errors"
	"github.com/suparena/coredata/models"
)

// LoadFunc produces the entity definitions of a dynamically loaded kind.
type LoadFunc func(ctx context.Context) ([]models.EntityDefinition, error)

// KindConfig describes a kind whose entities are loaded at runtime.
type KindConfig struct {
	Name         string
	LoadEntities LoadFunc
}

// DefaultEntities returns the statically declared root entities.
func DefaultEntities() []models.EntityDefinition {
	return []models.EntityDefinition{
		{Name: "postType", Kind: models.KindRoot, Key: "slug", BaseURL: "/wp/v2/types"},
		{Name: "media", Plural: "mediaItems", Kind: models.KindRoot, BaseURL: "/wp/v2/media"},
		{Name: "taxonomy", Kind: models.KindRoot, Key: "slug", BaseURL: "/wp/v2/taxonomies", Plural: "taxonomies"},
	}
}

// Registry is the configuration object for entity kinds and definitions.
type Registry struct {
	mu       sync.RWMutex
	entities []models.EntityDefinition
	kinds    []KindConfig
}

// Option configures a Registry.
type Option func(*Registry)

// WithEntities replaces the default root entities.
func WithEntities(defs ...models.EntityDefinition) Option {
	return func(r *Registry) {
		r.entities = append([]models.EntityDefinition(nil), defs...)
	}
}

// WithKinds declares the dynamically loaded kinds.
func WithKinds(kinds ...KindConfig) Option {
	return func(r *Registry) {
		r.kinds = append(r.kinds, kinds...)
	}
}

// New builds a Registry seeded with DefaultEntities.
// It panics if the static configuration declares a kind twice or carries an
// invalid entity, since that is a programming error.
func New(opts ...Option) *Registry {
	r := &Registry{entities: DefaultEntities()}
	for _, opt := range opts {
		opt(r)
	}

	seen := make(map[string]bool, len(r.kinds))
	for _, k := range r.kinds {
		if k.Name == "" || k.LoadEntities == nil {
			panic("registry: kind config requires a name and a load function")
		}
		if seen[k.Name] {
			panic(fmt.Sprintf("registry: kind %q already registered", k.Name))
		}
		seen[k.Name] = true
	}

	static := r.entities
	r.entities = nil
	if _, err := r.AddEntities(static...); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	return r
}

// Kind returns the config of the named kind, if any.
func (r *Registry) Kind(name string) (KindConfig, bool) {
	for _, k := range r.kinds {
		if k.Name == name {
			return k, true
		}
	}
	return KindConfig{}, false
}

// Kinds returns the names of the dynamically loaded kinds in declaration order.
func (r *Registry) Kinds() []string {
	names := make([]string, 0, len(r.kinds))
	for _, k := range r.kinds {
		names = append(names, k.Name)
	}
	return names
}

// Entities returns a snapshot of every known entity definition.
func (r *Registry) Entities() []models.EntityDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.EntityDefinition(nil), r.entities...)
}

// EntitiesByKind returns the known definitions of one kind.
func (r *Registry) EntitiesByKind(kind string) []models.EntityDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.EntityDefinition
	for _, e := range r.entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// GetEntity looks up a definition by kind and name.
func (r *Registry) GetEntity(kind, name string) (models.EntityDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entities {
		if e.Kind == kind && e.Name == name {
			return e, nil
		}
	}
	return models.EntityDefinition{}, errors.NewNotFoundError(kind, name)
}

// AddEntities records definitions, skipping any (kind, name) already known.
// It returns the number of definitions actually added.
func (r *Registry) AddEntities(defs ...models.EntityDefinition) (int, error) {
	for _, d := range defs {
		if d.Kind == "" {
			return 0, errors.NewValidationError("kind", fmt.Sprintf("entity %q has no kind", d.Name))
		}
		if d.Name == "" {
			return 0, errors.NewValidationError("name", fmt.Sprintf("entity of kind %q has no name", d.Kind))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	added := 0
	for _, d := range defs {
		if r.has(d) {
			continue
		}
		r.entities = append(r.entities, d)
		added++
	}
	return added, nil
}

func (r *Registry) has(def models.EntityDefinition) bool {
	for _, e := range r.entities {
		if e.Same(def) {
			return true
		}
	}
	return false
}
