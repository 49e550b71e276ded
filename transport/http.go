/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/suparena/coredata/errors"
)

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// HTTPClient implements Requester over HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	headers http.Header
	log     logr.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient sets the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) {
		h.client = c
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(h *HTTPClient) {
		h.headers.Add(key, value)
	}
}

// WithNonce sends the REST API nonce used for cookie-authenticated requests.
func WithNonce(nonce string) Option {
	return WithHeader("X-WP-Nonce", nonce)
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(h *HTTPClient) {
		h.log = l
	}
}

// NewHTTPClient creates a client for the REST API rooted at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	h := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		headers: make(http.Header),
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Request performs req and returns the response body.
func (h *HTTPClient) Request(ctx context.Context, req Request) (json.RawMessage, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, h.baseURL+req.Path, nil)
	if err != nil {
		return nil, errors.NewTransportError(req.Path, 0, err)
	}
	httpReq.Header = h.headers.Clone()
	httpReq.Header.Set("Accept", "application/json")

	h.log.V(1).Info("REST request", "method", method, "path", req.Path)
	resp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, errors.NewTransportError(req.Path, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, errors.NewTransportError(req.Path, resp.StatusCode,
			fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(body))))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError(req.Path, resp.StatusCode, fmt.Errorf("failed to read body: %w", err))
	}
	if !json.Valid(body) {
		return nil, errors.NewParseError("response of "+req.Path, fmt.Errorf("body is not valid JSON"))
	}
	return body, nil
}
