// Package maps defines the key/value pair shape that map entries take when
// they leave a Go map, helpers for moving between the two forms, and a
// HashMap for keys that define their own equality.
package maps

import (
	"cmp"
	"fmt"
	"iter"
	stdmaps "maps"
	"slices"
)

// KeyValuePair is a generic key-value pair struct used to represent entries in maps.
//
// Example:
//
//	for _, entry := range maps.Entries(m) {
//	    fmt.Printf("Key: %v, Value: %v\n", entry.Key, entry.Value)
//	}
type KeyValuePair[K any, V any] struct {
	Key   K
	Value V
}

// NewKeyValuePair builds a KeyValuePair.
func NewKeyValuePair[K any, V any](key K, value V) KeyValuePair[K, V] {
	return KeyValuePair[K, V]{Key: key, Value: value}
}

// String renders the pair as "[key, value]".
func (p KeyValuePair[K, V]) String() string {
	return fmt.Sprintf("[%v, %v]", p.Key, p.Value)
}

// All returns an iterator over the entries of m, in Go's unspecified map order.
func All[K comparable, V any](m map[K]V) iter.Seq[KeyValuePair[K, V]] {
	return func(yield func(KeyValuePair[K, V]) bool) {
		for k, v := range m {
			if !yield(KeyValuePair[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

// Entries returns the entries of m sorted by key.
func Entries[K cmp.Ordered, V any](m map[K]V) []KeyValuePair[K, V] {
	out := make([]KeyValuePair[K, V], 0, len(m))

	for _, k := range slices.Sorted(stdmaps.Keys(m)) {
		out = append(out, KeyValuePair[K, V]{Key: k, Value: m[k]})
	}

	return out
}

// FromEntries builds a map from a sequence of entries. Later entries win
// when keys repeat.
func FromEntries[K comparable, V any](entries iter.Seq[KeyValuePair[K, V]]) map[K]V {
	out := make(map[K]V)

	for entry := range entries {
		out[entry.Key] = entry.Value
	}

	return out
}
