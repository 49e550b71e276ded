/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.KeyValue for testing
package mock

import (
	"context"
	"sync"
)

// KeyValue is a mock implementation of datastore.KeyValue for testing
type KeyValue struct {
	mu          sync.RWMutex
	data        map[string]string
	writes      []Write
	getError    error
	setError    error
	deleteError error
}

// Write records one Set call
type Write struct {
	Key   string
	Value string
}

// New creates a new mock KeyValue
func New() *KeyValue {
	return &KeyValue{
		data: make(map[string]string),
	}
}

// WithGetError makes Get operations return an error
func (m *KeyValue) WithGetError(err error) *KeyValue {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
	return m
}

// WithSetError makes Set operations return an error
func (m *KeyValue) WithSetError(err error) *KeyValue {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *KeyValue) WithDeleteError(err error) *KeyValue {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteError = err
	return m
}

// Get retrieves the value stored under key
func (m *KeyValue) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if ctx.Err() != nil {
		return "", false, ctx.Err()
	}
	if m.getError != nil {
		return "", false, m.getError
	}
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key
func (m *KeyValue) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	m.writes = append(m.writes, Write{Key: key, Value: value})
	return nil
}

// Delete removes key
func (m *KeyValue) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if m.deleteError != nil {
		return m.deleteError
	}
	delete(m.data, key)
	return nil
}

// Helper methods for testing

// SetData directly sets the internal data map (for testing)
func (m *KeyValue) SetData(data map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

// GetData returns a copy of the internal data map (for testing)
func (m *KeyValue) GetData() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]string, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}

// Writes returns the successful Set calls in order
func (m *KeyValue) Writes() []Write {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Write(nil), m.writes...)
}

// Count returns the number of stored keys
func (m *KeyValue) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data and recorded writes
func (m *KeyValue) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]string)
	m.writes = nil
}
