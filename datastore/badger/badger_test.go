/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package badger_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/coredata/datastore"
	"github.com/suparena/coredata/datastore/badger"
	"github.com/suparena/coredata/datastore/kvtest"
)

var (
	_ datastore.KeyValue = (*badger.KeyValueStore)(nil)
	_ datastore.Closer   = (*badger.KeyValueStore)(nil)
)

func TestBadgerStore_Contract(t *testing.T) {
	store, err := badger.Open(badger.Options{InMemory: true})
	require.NoError(t, err)
	defer store.Close()

	kvtest.RunKeyValueContract(t, store)
}

func TestBadgerStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := badger.Open(badger.Options{Path: dir})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "prefs", `{"mode":"text"}`))
	require.NoError(t, store.Close())

	reopened, err := badger.Open(badger.Options{Path: dir})
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "prefs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"mode":"text"}`, v)
}

func TestBadgerStore_InMemoryIgnoresPath(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := badger.Open(badger.Options{Path: dir, InMemory: true})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "prefs", `{"mode":"text"}`))
	require.NoError(t, store.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is written to disk")
}
