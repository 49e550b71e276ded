/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package transport

import (
	"context"
	"encoding/json"
	"net/http"
)

// Request addresses one REST call. Method defaults to GET.
type Request struct {
	Method string
	Path   string
}

// Get is shorthand for a GET request of path.
func Get(path string) Request {
	return Request{Method: http.MethodGet, Path: path}
}

// Requester performs REST requests and returns the raw JSON body.
type Requester interface {
	Request(ctx context.Context, req Request) (json.RawMessage, error)
}
