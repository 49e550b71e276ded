/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a scripted implementation of transport.Requester for testing
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/suparena/coredata/errors"
	"github.com/suparena/coredata/transport"
)

// Requester is a mock implementation of transport.Requester for testing
type Requester struct {
	mu          sync.Mutex
	responses   map[string]json.RawMessage
	errs        map[string]error
	requestFunc func(ctx context.Context, req transport.Request) (json.RawMessage, error)
	calls       []transport.Request
}

// New creates a new mock Requester
func New() *Requester {
	return &Requester{
		responses: make(map[string]json.RawMessage),
		errs:      make(map[string]error),
	}
}

// WithResponse scripts the body returned for path. body is marshaled to JSON
// unless it is already a json.RawMessage.
func (m *Requester) WithResponse(path string, body any) *Requester {
	raw, ok := body.(json.RawMessage)
	if !ok {
		b, err := json.Marshal(body)
		if err != nil {
			panic(fmt.Sprintf("mock: cannot marshal response for %s: %v", path, err))
		}
		raw = b
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[path] = raw
	return m
}

// WithError makes requests for path fail with err
func (m *Requester) WithError(path string, err error) *Requester {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[path] = err
	return m
}

// WithRequestFunc sets a custom handler, used before scripted responses
func (m *Requester) WithRequestFunc(f func(ctx context.Context, req transport.Request) (json.RawMessage, error)) *Requester {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestFunc = f
	return m
}

// Request records req and returns the scripted result
func (m *Requester) Request(ctx context.Context, req transport.Request) (json.RawMessage, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	f := m.requestFunc
	m.mu.Unlock()

	if f != nil {
		return f(ctx, req)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.NewTransportError(req.Path, 0, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.errs[req.Path]; ok {
		return nil, err
	}
	if body, ok := m.responses[req.Path]; ok {
		return body, nil
	}
	return nil, errors.NewTransportError(req.Path, http.StatusNotFound, fmt.Errorf("no route"))
}

// Helper methods for testing

// Calls returns a copy of the recorded requests
func (m *Requester) Calls() []transport.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]transport.Request(nil), m.calls...)
}

// CallCount returns how many requests were made for path
func (m *Requester) CallCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, c := range m.calls {
		if c.Path == path {
			n++
		}
	}
	return n
}
