/*
Package ddb provides a DynamoDB implementation of datastore.KeyValue.

Each storage key is one item of a single table. The primary key is derived
from an index map whose templates reference item fields by macro:

	indexMap := map[string]string{
	    "PK": "PERSIST#{Key}",   // Becomes "PERSIST#core/edit-post"
	    "SK": "PERSIST#{Key}",
	}

Every item carries EntityType "PersistedSlice" and an RFC 3339 UpdatedAt
stamp, readable through Stat:

	store, err := ddb.NewKeyValueStoreFromCredentials(ctx, key, secret, region, table)
	entry, ok, err := store.Stat(ctx, "core/edit-post")
	log.Printf("last written %s", entry.UpdatedAt)
*/
package ddb
