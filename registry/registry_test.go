/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"context"
	"testing"

	"github.com/suparena/coredata/errors"
	"github.com/suparena/coredata/models"
)

func noopLoad(ctx context.Context) ([]models.EntityDefinition, error) {
	return nil, nil
}

func TestDefaultEntities(t *testing.T) {
	reg := New()

	media, err := reg.GetEntity(models.KindRoot, "media")
	if err != nil {
		t.Fatalf("GetEntity failed: %v", err)
	}
	if media.BaseURL != "/wp/v2/media" || media.Plural != "mediaItems" {
		t.Fatalf("unexpected media definition: %+v", media)
	}
	if media.IDField() != "id" {
		t.Errorf("Expected implicit id field, got %q", media.IDField())
	}

	postType, err := reg.GetEntity(models.KindRoot, "postType")
	if err != nil {
		t.Fatalf("GetEntity failed: %v", err)
	}
	if postType.IDField() != "slug" {
		t.Errorf("Expected slug key, got %q", postType.IDField())
	}

	if got := len(reg.EntitiesByKind(models.KindRoot)); got != 3 {
		t.Errorf("Expected 3 root entities, got %d", got)
	}
}

func TestGetEntityNotFound(t *testing.T) {
	reg := New()

	_, err := reg.GetEntity(models.KindPostType, "page")
	if !errors.IsNotFound(err) {
		t.Fatalf("Expected not found error, got: %v", err)
	}
}

func TestGetMethodName(t *testing.T) {
	reg := New()
	if _, err := reg.AddEntities(
		models.EntityDefinition{Kind: models.KindPostType, Name: "page", BaseURL: "/wp/v2/pages"},
		models.EntityDefinition{Kind: models.KindPostType, Name: "wp_block", BaseURL: "/wp/v2/blocks"},
	); err != nil {
		t.Fatalf("AddEntities failed: %v", err)
	}

	tests := []struct {
		kind      string
		name      string
		prefix    string
		usePlural bool
		expected  string
	}{
		{models.KindPostType, "page", "get", false, "getPostTypePage"},
		{models.KindPostType, "page", "get", true, "getPostTypePages"},
		{models.KindPostType, "wp_block", "receive", false, "receivePostTypeWpBlock"},
		{models.KindRoot, "media", "get", true, "getMediaItems"},
		{models.KindRoot, "media", "get", false, "getMedia"},
		{models.KindRoot, "taxonomy", "get", true, "getTaxonomies"},
		{models.KindRoot, "postType", "", false, "getPostType"},
		{models.KindPostType, "wp_block", "", true, "getPostTypeWpBlocks"},
		{models.KindRoot, "postType", "get", true, "getPostTypes"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got, err := reg.GetMethodName(tt.kind, tt.name, tt.prefix, tt.usePlural)
			if err != nil {
				t.Fatalf("GetMethodName failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}

	t.Run("UnknownEntity", func(t *testing.T) {
		_, err := reg.GetMethodName(models.KindRoot, "menu", "get", false)
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
	})
}

func TestUpperCamel(t *testing.T) {
	tests := map[string]string{
		"postType":   "PostType",
		"post_type":  "PostType",
		"post-type":  "PostType",
		"mediaItems": "MediaItems",
		"XMLFeed":    "XmlFeed",
		"foo2bar":    "Foo2Bar",
		"":           "",
	}
	for in, expected := range tests {
		if got := upperCamel(in); got != expected {
			t.Errorf("upperCamel(%q) = %q, expected %q", in, got, expected)
		}
	}
}

func TestAddEntitiesIsAdditive(t *testing.T) {
	reg := New()
	page := models.EntityDefinition{Kind: models.KindPostType, Name: "page", BaseURL: "/wp/v2/pages"}

	added, err := reg.AddEntities(page, page)
	if err != nil {
		t.Fatalf("AddEntities failed: %v", err)
	}
	if added != 1 {
		t.Fatalf("Expected 1 added, got %d", added)
	}

	added, err = reg.AddEntities(models.EntityDefinition{Kind: models.KindPostType, Name: "page", BaseURL: "/other"})
	if err != nil {
		t.Fatalf("AddEntities failed: %v", err)
	}
	if added != 0 {
		t.Fatalf("Expected duplicate to be skipped, got %d added", added)
	}
	got, _ := reg.GetEntity(models.KindPostType, "page")
	if got.BaseURL != "/wp/v2/pages" {
		t.Errorf("Existing entity was modified: %+v", got)
	}

	_, err = reg.AddEntities(models.EntityDefinition{Kind: models.KindPostType})
	if !errors.IsValidationError(err) {
		t.Errorf("Expected validation error for missing name, got: %v", err)
	}
}

func TestKinds(t *testing.T) {
	reg := New(WithKinds(KindConfig{Name: models.KindPostType, LoadEntities: noopLoad}))

	if _, ok := reg.Kind(models.KindPostType); !ok {
		t.Fatal("Expected postType kind to be registered")
	}
	if _, ok := reg.Kind("comment"); ok {
		t.Fatal("Expected comment kind to be unknown")
	}
	if names := reg.Kinds(); len(names) != 1 || names[0] != models.KindPostType {
		t.Errorf("Unexpected kinds: %v", names)
	}
}

func TestDuplicateKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for duplicate kind")
		}
	}()
	New(WithKinds(
		KindConfig{Name: "postType", LoadEntities: noopLoad},
		KindConfig{Name: "postType", LoadEntities: noopLoad},
	))
}

func TestWithEntitiesReplacesDefaults(t *testing.T) {
	reg := New(WithEntities(models.EntityDefinition{Kind: models.KindRoot, Name: "user", BaseURL: "/wp/v2/users"}))

	if len(reg.Entities()) != 1 {
		t.Fatalf("Expected only the configured entity, got %v", reg.Entities())
	}
	if _, err := reg.GetEntity(models.KindRoot, "media"); !errors.IsNotFound(err) {
		t.Errorf("Expected media to be absent, got: %v", err)
	}
}
