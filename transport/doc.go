/*
Package transport defines the REST transport used to fetch entity data.

The Requester interface is the single seam the loaders depend on:

	type Requester interface {
	    Request(ctx context.Context, req Request) (json.RawMessage, error)
	}

Implementations:
  - HTTPClient: net/http client rooted at a site URL (e.g. https://example.org/wp-json)
  - mock: scripted responses keyed by path, for tests

Failures are reported as *errors.TransportError, carrying the HTTP status when
a response was received.
*/
package transport
