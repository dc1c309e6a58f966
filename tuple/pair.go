package tuple

import (
	"iter"

	"github.com/amp-labs/amp-generics/maps"
)

// ToPairEntry converts a Tuple2 into a key/value pair: the first element
// becomes the key and the second the value. The conversion is lossless.
func ToPairEntry[K, V any](t Tuple2[K, V]) maps.KeyValuePair[K, V] {
	return maps.KeyValuePair[K, V]{Key: t.first, Value: t.second}
}

// FromPairEntry is the inverse of ToPairEntry.
func FromPairEntry[K, V any](entry maps.KeyValuePair[K, V]) Tuple2[K, V] {
	return NewTuple2(entry.Key, entry.Value)
}

// ToPairEntry is the method form of the package-level ToPairEntry.
func (t Tuple2[A, B]) ToPairEntry() maps.KeyValuePair[A, B] {
	return ToPairEntry(t)
}

// FromMap returns an iterator over the entries of m as pairs, in Go's
// unspecified map order.
func FromMap[K comparable, V any](m map[K]V) iter.Seq[Tuple2[K, V]] {
	return func(yield func(Tuple2[K, V]) bool) {
		for entry := range maps.All(m) {
			if !yield(FromPairEntry(entry)) {
				return
			}
		}
	}
}

// ToMap collects pairs into a map, keyed by the first element. Later pairs
// win when keys repeat.
func ToMap[K comparable, V any](pairs iter.Seq[Tuple2[K, V]]) map[K]V {
	return maps.FromEntries(func(yield func(maps.KeyValuePair[K, V]) bool) {
		for t := range pairs {
			if !yield(ToPairEntry(t)) {
				return
			}
		}
	})
}
