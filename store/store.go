/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"sync"

	"github.com/suparena/coredata/models"
)

// State is the root state tree.
type State = map[string]any

// Reducer computes the next root state. state is nil before initialisation.
type Reducer func(state State, action models.Action) State

// Store holds the state produced by a reducer.
type Store struct {
	dispatchMu sync.Mutex
	reducer    Reducer

	mu        sync.RWMutex
	state     State
	listeners []*listener
}

type listener struct {
	fn func()
}

// New creates a Store and initialises its state with an init action.
func New(reducer Reducer) *Store {
	return &Store{
		reducer: reducer,
		state:   reducer(nil, models.Action{Type: models.ActionInit}),
	}
}

// GetState returns the current state. Callers must not mutate it.
func (s *Store) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies action and then notifies subscribers.
func (s *Store) Dispatch(action models.Action) {
	s.dispatchMu.Lock()
	s.mu.Lock()
	s.state = s.reducer(s.state, action)
	listeners := append([]*listener(nil), s.listeners...)
	s.mu.Unlock()
	s.dispatchMu.Unlock()

	for _, l := range listeners {
		l.fn()
	}
}

// Subscribe registers fn to run after every dispatch and returns a function
// removing it.
func (s *Store) Subscribe(fn func()) func() {
	l := &listener{fn: fn}

	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, cur := range s.listeners {
				if cur == l {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}
