/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package loader implements the runtime loaders of dynamically known entity kinds.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/suparena/coredata/errors"
	"github.com/suparena/coredata/models"
	"github.com/suparena/coredata/registry"
	"github.com/suparena/coredata/transport"
)

// PostTypesPath is the editable-context collection of post types.
const PostTypesPath = "/wp/v2/types?context=edit"

// restPrefix is prepended to a post type's rest_base to form its BaseURL.
const restPrefix = "/wp/v2/"

// PostTypeDescriptor is the subset of a post type object the loader reads.
type PostTypeDescriptor struct {
	Name     string `mapstructure:"name"`
	Slug     string `mapstructure:"slug"`
	RestBase string `mapstructure:"rest_base"`
}

// PostTypes loads the entities of the postType kind.
type PostTypes struct {
	requester transport.Requester
}

// NewPostTypes creates a PostTypes loader using r.
func NewPostTypes(r transport.Requester) *PostTypes {
	return &PostTypes{requester: r}
}

// LoadEntities fetches the post types and returns one definition per type,
// sorted by name. Transport errors are returned unchanged.
func (p *PostTypes) LoadEntities(ctx context.Context) ([]models.EntityDefinition, error) {
	body, err := p.requester.Request(ctx, transport.Get(PostTypesPath))
	if err != nil {
		return nil, err
	}

	// An install without post types encodes its empty map as [].
	var empty []json.RawMessage
	if err := json.Unmarshal(body, &empty); err == nil && len(empty) == 0 {
		return []models.EntityDefinition{}, nil
	}

	var raw map[string]map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.NewParseError("post types", err)
	}

	entities := make([]models.EntityDefinition, 0, len(raw))
	for name, fields := range raw {
		var desc PostTypeDescriptor
		if err := mapstructure.Decode(fields, &desc); err != nil {
			return nil, errors.NewParseError(fmt.Sprintf("post type %q", name), err)
		}
		entities = append(entities, models.EntityDefinition{
			Kind:    models.KindPostType,
			Name:    name,
			BaseURL: restPrefix + desc.RestBase,
		})
	}

	sort.Slice(entities, func(i, j int) bool {
		return entities[i].Name < entities[j].Name
	})
	return entities, nil
}

// PostTypeKind returns the KindConfig of the postType kind backed by r.
func PostTypeKind(r transport.Requester) registry.KindConfig {
	return registry.KindConfig{
		Name:         models.KindPostType,
		LoadEntities: NewPostTypes(r).LoadEntities,
	}
}
