/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package restfake serves a small fake of the REST API for tests and local runs.
package restfake

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gopkg.in/yaml.v3"
)

// PostType is the descriptor served by the post types endpoint.
type PostType struct {
	Name     string `json:"name" yaml:"name"`
	Slug     string `json:"slug" yaml:"slug"`
	RestBase string `json:"rest_base" yaml:"rest_base"`
}

// Fixtures is the content served by the fake.
type Fixtures struct {
	PostTypes map[string]PostType `yaml:"postTypes"`
}

// DefaultFixtures mirrors the post types of a stock install.
func DefaultFixtures() Fixtures {
	return Fixtures{PostTypes: map[string]PostType{
		"post":       {Name: "Posts", Slug: "post", RestBase: "posts"},
		"page":       {Name: "Pages", Slug: "page", RestBase: "pages"},
		"attachment": {Name: "Media", Slug: "attachment", RestBase: "media"},
		"wp_block":   {Name: "Blocks", Slug: "wp_block", RestBase: "blocks"},
	}}
}

// LoadFixtures reads fixtures from a YAML file.
func LoadFixtures(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("failed to read fixtures: %w", err)
	}
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixtures{}, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return f, nil
}

// Server is the fake REST API.
type Server struct {
	mu       sync.RWMutex
	fixtures Fixtures
	status   int
	hits     atomic.Int64
}

// New creates a Server serving fixtures.
func New(fixtures Fixtures) *Server {
	return &Server{fixtures: fixtures}
}

// FailWith makes every request answer status. Zero restores normal behavior.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Hits returns the number of requests served.
func (s *Server) Hits() int64 {
	return s.hits.Load()
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.count)
	r.Use(s.failure)

	r.Route("/wp/v2", func(r chi.Router) {
		r.Get("/types", s.listTypes)
		r.Get("/types/{slug}", s.getType)
	})
	return r
}

func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) failure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		status := s.status
		s.mu.RUnlock()
		if status != 0 {
			writeJSON(w, status, map[string]any{"code": "rest_fake_failure", "message": http.StatusText(status)})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listTypes(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	writeJSON(w, http.StatusOK, s.fixtures.PostTypes)
}

func (s *Server) getType(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pt, ok := s.fixtures.PostTypes[chi.URLParam(r, "slug")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"code": "rest_type_invalid", "message": "Invalid post type."})
		return
	}
	writeJSON(w, http.StatusOK, pt)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
