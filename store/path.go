/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package store

import (
	"reflect"
	"strings"
)

// GetPath returns the value at the dot-separated path of state, or nil when
// any segment is missing.
func GetPath(state any, path string) any {
	cur := state
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[seg]
	}
	return cur
}

// SetPath returns a copy of state with value stored at path. Maps along the
// path are shallow-copied; state itself is never mutated.
func SetPath(state State, path string, value any) State {
	return setSegments(state, strings.Split(path, "."), value)
}

func setSegments(m map[string]any, segs []string, value any) map[string]any {
	next := make(map[string]any, len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	if len(segs) == 1 {
		next[segs[0]] = value
		return next
	}
	child, _ := m[segs[0]].(map[string]any)
	next[segs[0]] = setSegments(child, segs[1:], value)
	return next
}

// ShallowMerge returns a new map holding base overlaid by over.
func ShallowMerge(base, over map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// SameRef reports whether a and b are the same value by identity: maps,
// slices, pointers, channels and funcs compare by reference, other values
// by equality.
func SameRef(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if va.Type().Comparable() {
		return a == b
	}
	return false
}
