/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package orchestrator decides whether an entity kind needs loading and
// produces the action that adds the loaded entities to the store.
package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"golang.org/x/sync/singleflight"

	"github.com/suparena/coredata/internal/logging"
	"github.com/suparena/coredata/internal/metrics"
	"github.com/suparena/coredata/models"
	"github.com/suparena/coredata/registry"
	"github.com/suparena/coredata/store"
)

// State is the view of store state the orchestrator consults.
type State interface {
	HasEntitiesByKind(kind string) bool
}

// Orchestrator loads dynamically known entity kinds.
type Orchestrator struct {
	registry *registry.Registry
	log      logr.Logger
	metrics  *metrics.Metrics
	dedupe   bool
	inflight singleflight.Group

	mu      sync.Mutex
	flights map[string]*flight
}

// flight is a shared fetch of one kind. Its context is detached from the
// callers and cancelled once the last waiter has left.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Orchestrator) {
		o.log = l
	}
}

// WithMetrics records load attempts.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// WithDeduplication makes concurrent loads of the same kind share a single
// fetch. Each caller still receives its own action. A caller giving up on its
// context leaves the fetch running for the others.
func WithDeduplication(enabled bool) Option {
	return func(o *Orchestrator) {
		o.dedupe = enabled
	}
}

// New creates an Orchestrator reading kind configs from reg.
func New(reg *registry.Registry, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		registry: reg,
		log:      logr.Discard(),
		flights:  make(map[string]*flight),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// LoadKindEntities returns the actions needed to load kind into a store
// whose current state is state. The result is empty when kind is already
// loaded or has no registered loader, and holds exactly one ADD_ENTITIES
// action otherwise. Loader errors are returned unchanged.
func (o *Orchestrator) LoadKindEntities(ctx context.Context, state State, kind string) ([]models.Action, error) {
	if state != nil && state.HasEntitiesByKind(kind) {
		o.metrics.KindLoad(kind, metrics.ResultSkipped)
		return nil, nil
	}

	kindConfig, ok := o.registry.Kind(kind)
	if !ok {
		o.log.V(1).Info("No loader registered for kind", "kind", kind)
		o.metrics.KindLoad(kind, metrics.ResultUnknown)
		return nil, nil
	}

	entities, err := o.load(ctx, kindConfig)
	if err != nil {
		o.log.V(1).Info("Failed to load entities", "kind", kind, "error", err.Error())
		o.metrics.KindLoad(kind, metrics.ResultError)
		return nil, err
	}

	o.log.V(1).Info("Loaded entities", "kind", kind, "count", len(entities))
	o.log.V(2).Info("Loaded entity definitions", "kind", kind, "entities", logging.JSON(entities))
	o.metrics.KindLoad(kind, metrics.ResultLoaded)
	return []models.Action{models.AddEntities(entities)}, nil
}

func (o *Orchestrator) load(ctx context.Context, kindConfig registry.KindConfig) ([]models.EntityDefinition, error) {
	if !o.dedupe {
		return kindConfig.LoadEntities(ctx)
	}

	ch, f := o.join(ctx, kindConfig)
	defer o.leave(kindConfig.Name, f)

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		entities := res.Val.([]models.EntityDefinition)
		return append([]models.EntityDefinition(nil), entities...), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// join attaches the caller to the fetch of kindConfig, starting one if none
// is in flight.
func (o *Orchestrator) join(ctx context.Context, kindConfig registry.KindConfig) (<-chan singleflight.Result, *flight) {
	o.mu.Lock()
	defer o.mu.Unlock()

	f, ok := o.flights[kindConfig.Name]
	if !ok {
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &flight{ctx: fctx, cancel: cancel}
		o.flights[kindConfig.Name] = f
	}
	f.waiters++

	ch := o.inflight.DoChan(kindConfig.Name, func() (any, error) {
		return kindConfig.LoadEntities(f.ctx)
	})
	return ch, f
}

// leave detaches a caller. The last one out cancels the fetch and forgets it
// so the next caller starts afresh.
func (o *Orchestrator) leave(kind string, f *flight) {
	o.mu.Lock()
	defer o.mu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	delete(o.flights, kind)
	o.inflight.Forget(kind)
}

// Run loads kind into st: it computes the actions against the current state,
// records the definitions in the registry and dispatches the actions.
func (o *Orchestrator) Run(ctx context.Context, st *store.Store, kind string) error {
	actions, err := o.LoadKindEntities(ctx, store.Entities(st.GetState()), kind)
	if err != nil {
		return fmt.Errorf("failed to load %s entities: %w", kind, err)
	}

	for _, action := range actions {
		if _, err := o.registry.AddEntities(action.Entities...); err != nil {
			return fmt.Errorf("invalid %s entities: %w", kind, err)
		}
		st.Dispatch(action)
	}
	return nil
}
