package maps

import (
	"iter"

	"github.com/amp-labs/amp-generics/compare"
	"github.com/amp-labs/amp-generics/hashing"
)

// Key is what a HashMap needs from its keys: a hash code that agrees with Equals.
// Tuples, optional.Value and either.Value all qualify, including those holding
// slices or maps that a built-in map cannot use as keys.
type Key[T any] interface {
	compare.Comparable[T]
	hashing.HashCoder
}

// HashMap is a map keyed by HashCode and Equals rather than by ==. Keys with the
// same hash code share a bucket and are told apart with Equals.
//
// The zero value is not ready to use; call NewHashMap. A HashMap is not safe
// for concurrent mutation.
type HashMap[K Key[K], V any] struct {
	buckets map[uint32][]KeyValuePair[K, V]
	size    int
}

// NewHashMap returns an empty HashMap.
func NewHashMap[K Key[K], V any]() *HashMap[K, V] {
	return &HashMap[K, V]{buckets: make(map[uint32][]KeyValuePair[K, V])}
}

func (h *HashMap[K, V]) find(key K) (uint32, int) {
	code := key.HashCode()

	for i, entry := range h.buckets[code] {
		if key.Equals(entry.Key) {
			return code, i
		}
	}

	return code, -1
}

// Add inserts or replaces the value for key.
func (h *HashMap[K, V]) Add(key K, value V) {
	code, idx := h.find(key)
	if idx >= 0 {
		h.buckets[code][idx].Value = value

		return
	}

	h.buckets[code] = append(h.buckets[code], NewKeyValuePair(key, value))
	h.size++
}

// Get returns the value stored for key.
func (h *HashMap[K, V]) Get(key K) (V, bool) { //nolint:ireturn
	code, idx := h.find(key)
	if idx < 0 {
		var zero V

		return zero, false
	}

	return h.buckets[code][idx].Value, true
}

// Contains reports whether key is present.
func (h *HashMap[K, V]) Contains(key K) bool {
	_, idx := h.find(key)

	return idx >= 0
}

// Remove deletes key. Removing an absent key is a no-op.
func (h *HashMap[K, V]) Remove(key K) {
	code, idx := h.find(key)
	if idx < 0 {
		return
	}

	bucket := h.buckets[code]
	if len(bucket) == 1 {
		delete(h.buckets, code)
	} else {
		h.buckets[code] = append(bucket[:idx:idx], bucket[idx+1:]...)
	}

	h.size--
}

// Clear removes every entry.
func (h *HashMap[K, V]) Clear() {
	h.buckets = make(map[uint32][]KeyValuePair[K, V])
	h.size = 0
}

// Size returns the number of entries.
func (h *HashMap[K, V]) Size() int {
	return h.size
}

// Seq ranges over the entries in no particular order.
func (h *HashMap[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range h.buckets {
			for _, entry := range bucket {
				if !yield(entry.Key, entry.Value) {
					return
				}
			}
		}
	}
}

// Union returns a new map with the entries of both maps. Values from other win.
func (h *HashMap[K, V]) Union(other *HashMap[K, V]) *HashMap[K, V] {
	result := NewHashMap[K, V]()

	for key, value := range h.Seq() {
		result.Add(key, value)
	}

	for key, value := range other.Seq() {
		result.Add(key, value)
	}

	return result
}

// Intersection returns a new map with the entries of h whose keys are also in other.
func (h *HashMap[K, V]) Intersection(other *HashMap[K, V]) *HashMap[K, V] {
	result := NewHashMap[K, V]()

	for key, value := range h.Seq() {
		if other.Contains(key) {
			result.Add(key, value)
		}
	}

	return result
}
