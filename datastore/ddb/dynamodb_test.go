/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/joho/godotenv"
	"github.com/suparena/coredata/datastore"
	"github.com/suparena/coredata/datastore/kvtest"
)

var _ datastore.KeyValue = (*KeyValueStore)(nil)

func TestKeyValueStoreContract(t *testing.T) {
	kvtest.RunKeyValueContract(t, NewKeyValueStore(newFakeAPI(), "test-table"))
}

func TestSetWritesKeysAndMetadata(t *testing.T) {
	api := newFakeAPI()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewKeyValueStore(api, "test-table", WithClock(func() time.Time { return at }))

	if err := store.Set(context.Background(), "core/edit-post", `{"mode":"visual"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	item, ok := api.items["PERSIST#core/edit-post|PERSIST#core/edit-post"]
	if !ok {
		t.Fatalf("Expected item under expanded key, got %v", api.items)
	}
	if et, _ := item["EntityType"].(*types.AttributeValueMemberS); et == nil || et.Value != EntityType {
		t.Errorf("Expected EntityType %q, got %v", EntityType, item["EntityType"])
	}

	entry, ok, err := store.Stat(context.Background(), "core/edit-post")
	if err != nil || !ok {
		t.Fatalf("Stat failed: ok=%v err=%v", ok, err)
	}
	if entry.Value != `{"mode":"visual"}` {
		t.Errorf("Unexpected value %q", entry.Value)
	}
	if !time.Time(entry.UpdatedAt).Equal(at) {
		t.Errorf("Expected UpdatedAt %v, got %v", at, entry.UpdatedAt)
	}
}

func TestCustomIndexMap(t *testing.T) {
	api := newFakeAPI()
	store := NewKeyValueStore(api, "test-table", WithIndexMap(map[string]string{
		"PK": "PREFS",
		"SK": "KEY#{Key}",
	}))

	if err := store.Set(context.Background(), "prefs", "{}"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok := api.items["PREFS|KEY#prefs"]; !ok {
		t.Fatalf("Expected item under custom key, got %v", api.items)
	}
}

func TestInvalidIndexMap(t *testing.T) {
	store := NewKeyValueStore(newFakeAPI(), "test-table", WithIndexMap(map[string]string{"PK": "{Key}"}))

	if _, _, err := store.Get(context.Background(), "prefs"); err == nil {
		t.Fatal("Expected error for index map without SK")
	}
}

func TestClientErrors(t *testing.T) {
	api := newFakeAPI()
	api.err = errors.New("throttled")
	store := NewKeyValueStore(api, "test-table")
	ctx := context.Background()

	if err := store.Set(ctx, "prefs", "{}"); !errors.Is(err, api.err) {
		t.Errorf("Expected wrapped client error from Set, got %v", err)
	}
	if _, _, err := store.Get(ctx, "prefs"); !errors.Is(err, api.err) {
		t.Errorf("Expected wrapped client error from Get, got %v", err)
	}
	if err := store.Delete(ctx, "prefs"); !errors.Is(err, api.err) {
		t.Errorf("Expected wrapped client error from Delete, got %v", err)
	}
}

func getIntegrationStore(t *testing.T) *KeyValueStore {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	tableName := os.Getenv("AWS_DDB_TABLE")
	if tableName == "" {
		t.Skip("AWS_DDB_TABLE not set, skipping DynamoDB integration test")
	}

	store, err := NewKeyValueStoreFromCredentials(context.Background(),
		os.Getenv("AWS_ACCESS_KEY"), os.Getenv("AWS_SECRET_KEY"), os.Getenv("AWS_REGION"), tableName)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestDynamoDBIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}
	kvtest.RunKeyValueContract(t, getIntegrationStore(t))
}
