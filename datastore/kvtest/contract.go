/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package kvtest provides a behavioural contract shared by every datastore.KeyValue backend.
package kvtest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/coredata/datastore"
)

// RunKeyValueContract exercises kv against the datastore.KeyValue contract.
func RunKeyValueContract(t *testing.T, kv datastore.KeyValue) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405.000000000")

	t.Run("Get Absent", func(t *testing.T) {
		v, ok, err := kv.Get(ctx, key+"-absent")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, key, `{"mode":"visual"}`))

		v, ok, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"mode":"visual"}`, v)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, key, `{"mode":"text"}`))

		v, _, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, `{"mode":"text"}`, v)
	})

	t.Run("Empty Value", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, key+"-empty", ""))

		v, ok, err := kv.Get(ctx, key+"-empty")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, v)
		require.NoError(t, kv.Delete(ctx, key+"-empty"))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, kv.Delete(ctx, key))

		_, ok, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, kv.Delete(ctx, key), "deleting an absent key is not an error")
	})
}
