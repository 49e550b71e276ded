/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package coredata

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/suparena/coredata/config"
	"github.com/suparena/coredata/datastore"
	"github.com/suparena/coredata/internal/metrics"
	"github.com/suparena/coredata/loader"
	"github.com/suparena/coredata/models"
	"github.com/suparena/coredata/orchestrator"
	"github.com/suparena/coredata/persist"
	"github.com/suparena/coredata/registry"
	"github.com/suparena/coredata/store"
	"github.com/suparena/coredata/transport"
)

// persistenceBackend is the name the client registers its durable storage under.
const persistenceBackend = "persistence"

// Client wires the registry, the store, the orchestrator and persistence.
type Client struct {
	Registry     *registry.Registry
	Store        *store.Store
	Orchestrator *orchestrator.Orchestrator
	Backends     *Backends

	cfg         *config.Config
	stopPersist func()
}

type clientOptions struct {
	requester  transport.Requester
	kv         datastore.KeyValue
	log        logr.Logger
	registerer prometheus.Registerer
}

// Option configures a Client.
type Option func(*clientOptions)

// WithRequester replaces the HTTP transport built from the configuration.
func WithRequester(r transport.Requester) Option {
	return func(o *clientOptions) {
		o.requester = r
	}
}

// WithKeyValue replaces the durable storage built from the configuration.
func WithKeyValue(kv datastore.KeyValue) Option {
	return func(o *clientOptions) {
		o.kv = kv
	}
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *clientOptions) {
		o.log = l
	}
}

// WithMetrics registers the client metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *clientOptions) {
		o.registerer = reg
	}
}

// New builds a Client from cfg and restores persisted state.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := clientOptions{log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	var m *metrics.Metrics
	if o.registerer != nil {
		m = metrics.New(o.registerer)
	}

	requester := o.requester
	if requester == nil {
		httpOpts := []transport.Option{transport.WithLogger(o.log.WithName("transport"))}
		if cfg.API.Timeout > 0 {
			httpOpts = append(httpOpts, transport.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))
		}
		if cfg.API.Nonce != "" {
			httpOpts = append(httpOpts, transport.WithNonce(cfg.API.Nonce))
		}
		requester = transport.NewHTTPClient(cfg.API.URL, httpOpts...)
	}

	reg := registry.New(registry.WithKinds(loader.PostTypeKind(requester)))
	if _, err := reg.AddEntities(cfg.Entities...); err != nil {
		return nil, fmt.Errorf("invalid configured entities: %w", err)
	}

	kv := o.kv
	if kv == nil {
		var err error
		if kv, err = OpenBackend(ctx, cfg.Persistence); err != nil {
			return nil, fmt.Errorf("failed to open %s backend: %w", cfg.Persistence.Backend, err)
		}
	}
	backends := NewBackends()
	if err := backends.Register(persistenceBackend, kv); err != nil {
		return nil, err
	}

	p := cfg.Persistence
	root := store.Combine(map[string]store.SliceReducer{
		store.EntitiesKey:    store.EntitiesReducer,
		store.PreferencesKey: store.PreferencesReducer(cfg.Preferences),
	})
	st := store.New(persist.WithRehydration(root, p.ReducerKey, p.StorageKey))

	stop, err := persist.LoadAndPersist(ctx, st, root, p.ReducerKey, p.StorageKey, kv,
		persist.WithLogger(o.log.WithName("persist")),
		persist.WithMetrics(m),
	)
	if err != nil {
		backends.Close()
		return nil, err
	}

	return &Client{
		Registry: reg,
		Store:    st,
		Orchestrator: orchestrator.New(reg,
			orchestrator.WithLogger(o.log.WithName("orchestrator")),
			orchestrator.WithMetrics(m),
			orchestrator.WithDeduplication(true),
		),
		Backends:    backends,
		cfg:         cfg,
		stopPersist: stop,
	}, nil
}

// LoadKind loads the entities of kind into the store if not already loaded.
func (c *Client) LoadKind(ctx context.Context, kind string) error {
	return c.Orchestrator.Run(ctx, c.Store, kind)
}

// EntitiesByKind returns the definitions of kind currently in the store.
func (c *Client) EntitiesByKind(kind string) []models.EntityDefinition {
	return store.Entities(c.Store.GetState()).ByKind(kind)
}

// MethodName returns the accessor name of the entity (kind, name).
func (c *Client) MethodName(kind, name, prefix string, usePlural bool) (string, error) {
	return c.Registry.GetMethodName(kind, name, prefix, usePlural)
}

// Preferences returns the persisted slice.
func (c *Client) Preferences() map[string]any {
	prefs, _ := store.GetPath(c.Store.GetState(), c.cfg.Persistence.ReducerKey).(map[string]any)
	return prefs
}

// UpdatePreferences merges values into the preferences and persists them.
func (c *Client) UpdatePreferences(values map[string]any) {
	c.Store.Dispatch(models.UpdatePreferences(values))
}

// ResetPreferences restores the configured defaults and removes the
// persisted slice from durable storage.
func (c *Client) ResetPreferences(ctx context.Context) error {
	p := c.cfg.Persistence
	c.Store.Dispatch(models.Rehydrate(p.StorageKey, store.ShallowMerge(c.cfg.Preferences, nil)))

	kv, err := c.Backends.Get(persistenceBackend)
	if err != nil {
		return err
	}
	if err := kv.Delete(ctx, p.StorageKey); err != nil {
		return fmt.Errorf("failed to delete persisted state %q: %w", p.StorageKey, err)
	}
	return nil
}

// Close stops persisting and releases the backends.
func (c *Client) Close() error {
	c.stopPersist()
	return c.Backends.Close()
}
