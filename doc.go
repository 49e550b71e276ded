/*
Package coredata is the entity loading and persistence layer of a REST-backed
client data store.

The library keeps a registry of entity kinds, loads the kinds whose entities
are only known at runtime (post types) from the REST API, and persists a
slice of the client state to durable storage so it survives restarts.

Key Features:
  - Explicit entity registry with conventional accessor names
  - Idempotent kind loading with optional in-flight de-duplication
  - Reducer store with rehydration and change-driven persistence
  - Durable storage backends: DynamoDB, Redis, BadgerDB
  - Semantic error types for better error handling

Basic Usage:

	cfg, _ := config.Load("coredata.yaml")
	client, err := coredata.New(ctx, cfg)
	if err != nil {
	    return err
	}
	defer client.Close()

	// Load the post types once; later calls are no-ops
	err = client.LoadKind(ctx, "postType")

	name, _ := client.MethodName("postType", "page", "get", false) // getPostTypePage

	// Preferences are written back to durable storage on change
	client.UpdatePreferences(map[string]any{"mode": "text"})
*/
package coredata
