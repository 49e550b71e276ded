/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/suparena/coredata/datastore"
	"github.com/suparena/coredata/datastore/kvtest"
	"github.com/suparena/coredata/datastore/mock"
)

var _ datastore.KeyValue = (*mock.KeyValue)(nil)

func TestMockKeyValueContract(t *testing.T) {
	kvtest.RunKeyValueContract(t, mock.New())
}

func TestMockKeyValue(t *testing.T) {
	ctx := context.Background()

	t.Run("RecordsWrites", func(t *testing.T) {
		kv := mock.New()

		if err := kv.Set(ctx, "prefs", `{"a":1}`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := kv.Set(ctx, "prefs", `{"a":2}`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		writes := kv.Writes()
		if len(writes) != 2 {
			t.Fatalf("Expected 2 writes, got %d", len(writes))
		}
		if writes[1].Value != `{"a":2}` {
			t.Fatalf("Unexpected last write: %+v", writes[1])
		}
		if kv.Count() != 1 {
			t.Fatalf("Expected 1 key, got %d", kv.Count())
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		kv := mock.New()

		getErr := errors.New("storage unavailable")
		kv.WithGetError(getErr)
		if _, _, err := kv.Get(ctx, "prefs"); err != getErr {
			t.Fatalf("Expected get error, got: %v", err)
		}

		setErr := errors.New("quota exceeded")
		kv.WithSetError(setErr)
		if err := kv.Set(ctx, "prefs", "{}"); err != setErr {
			t.Fatalf("Expected set error, got: %v", err)
		}
		if len(kv.Writes()) != 0 {
			t.Fatal("Failed writes must not be recorded")
		}

		deleteErr := errors.New("read only")
		kv.WithDeleteError(deleteErr)
		if err := kv.Delete(ctx, "prefs"); err != deleteErr {
			t.Fatalf("Expected delete error, got: %v", err)
		}
	})

	t.Run("CanceledContext", func(t *testing.T) {
		kv := mock.New()
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		if err := kv.Set(canceled, "prefs", "{}"); err != context.Canceled {
			t.Fatalf("Expected context.Canceled, got: %v", err)
		}
		if _, _, err := kv.Get(canceled, "prefs"); err != context.Canceled {
			t.Fatalf("Expected context.Canceled, got: %v", err)
		}
		if len(kv.Writes()) != 0 {
			t.Fatal("Canceled writes must not be recorded")
		}
	})

	t.Run("HelperMethods", func(t *testing.T) {
		kv := mock.New()

		kv.SetData(map[string]string{"a": "1", "b": "2"})
		if kv.Count() != 2 {
			t.Fatalf("Expected count 2, got %d", kv.Count())
		}

		data := kv.GetData()
		if data["b"] != "2" {
			t.Fatalf("Unexpected data: %v", data)
		}

		kv.Clear()
		if kv.Count() != 0 {
			t.Fatalf("Expected count 0 after clear, got %d", kv.Count())
		}
	})
}
