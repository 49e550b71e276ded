/*
Package store is a minimal reducer store holding the client-side state.

State is a tree of map[string]any. A Reducer computes the next state from the
previous state and an Action; reducers must return the previous value
unchanged (same map) when an action does not concern them, because change
detection downstream compares by reference.

	st := store.New(store.Combine(map[string]store.SliceReducer{
	    store.EntitiesKey:    store.EntitiesReducer,
	    store.PreferencesKey: store.PreferencesReducer(map[string]any{"mode": "visual"}),
	}))
	unsubscribe := st.Subscribe(func() { ... })
	st.Dispatch(models.AddEntities(defs))

Dispatch is serialised; subscribers run synchronously after every dispatch in
registration order.
*/
package store
