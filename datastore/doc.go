/*
Package datastore defines the durable storage used to persist state slices.

The main interface is KeyValue, string storage addressed by storage keys:

	type KeyValue interface {
	    Get(ctx context.Context, key string) (value string, ok bool, err error)
	    Set(ctx context.Context, key, value string) error
	    Delete(ctx context.Context, key string) error
	}

Implementations:
  - ddb: DynamoDB, one item per storage key in a single table
  - redis: Redis string keys under a prefix, optional TTL
  - badger: embedded BadgerDB, on disk or in memory
  - mock: in-memory implementation with error injection for testing

Absence is not an error: Get reports it with ok=false.
*/
package datastore
