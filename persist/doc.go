/*
Package persist adds rehydration and persistence of a state slice to a store.

WithRehydration wraps a reducer so that a REDUX_REHYDRATE action for its
storage key replaces the slice at reducerKey:

	reducer := persist.WithRehydration(root, "preferences", "core/edit-post")
	st := store.New(reducer)

LoadAndPersist then restores the slice from durable storage, shallow-merged
over the reducer's defaults, and writes it back whenever its reference
changes:

	stop, err := persist.LoadAndPersist(ctx, st, root, "preferences", "core/edit-post", kv)
	if err != nil {
	    return err // e.g. errors.IsParse(err) for corrupt storage
	}
	defer stop()

What is written is the slice as returned by the reducer for a SERIALIZE
action, so reducers can drop transient fields before they reach storage.
*/
package persist
