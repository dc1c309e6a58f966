// Package optional provides a type-safe Optional type for representing values that may or may not be present.
// It is designed to avoid nil-related panics by explicitly modeling the presence or absence of a value,
// and unlike a pointer it works for any type, including types that already have a meaningful nil.
// An Optional is conceptually a set of size zero or one.
//
// The zero Value is empty, so a declared-but-unset optional needs no constructor.
package optional

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"iter"

	"github.com/amp-labs/amp-generics/compare"
	"github.com/amp-labs/amp-generics/errors"
	"github.com/amp-labs/amp-generics/hashing"
)

var errMissingValueField = stderrors.New("optional: missing 'value' field in JSON")

// Value represents a value that may or may not be present.
// It is a generic type that can hold any value of type T.
// Use Some(value) to create a Value with a value, or None() for an empty Value.
type Value[T any] struct {
	value T
	isSet bool
}

var (
	_ compare.Comparable[Value[int]] = Value[int]{}
	_ hashing.HashCoder              = Value[int]{}
)

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value with no value.
func None[T any]() Value[T] {
	return Value[T]{isSet: false}
}

// FromPointer returns None for a nil pointer, and Some of the pointed-to value otherwise.
func FromPointer[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// ToPointer returns nil when empty, and a pointer to a copy of the value otherwise.
func (o Value[T]) ToPointer() *T {
	if !o.isSet {
		return nil
	}

	v := o.value

	return &v
}

// All returns an iterator that yields the value if present, or yields nothing if empty.
// This allows using Value in Go's range loops.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// ForEach applies the given function to the value if present.
// Does nothing if the Value is empty.
func (o Value[T]) ForEach(f func(T)) {
	for v := range o.All() {
		f(v)
	}
}

// HasValue returns true if the Value contains a value.
func (o Value[T]) HasValue() bool {
	return o.isSet
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and a boolean indicating whether the value is present.
// This is the safe way to extract a value from a Value.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// Value returns the contained value. Reading an empty Value is a programming
// error: it panics with an error wrapping errors.ErrInvalidState rather than
// handing back a zero value. Check HasValue first, or use Get.
func (o Value[T]) Value() T { //nolint:ireturn
	if !o.isSet {
		panic(errors.InvalidState("optional: value read from None"))
	}

	return o.value
}

// GetOrPanic returns the value if present, or panics if empty.
// Use this only when you are certain the Value contains a value.
func (o Value[T]) GetOrPanic() T { //nolint:ireturn
	if !o.isSet {
		panic(errors.InvalidState("optional: called GetOrPanic on None"))
	}

	return o.value
}

// GetOrZero returns the value if present, or the zero value of T if empty.
func (o Value[T]) GetOrZero() T { //nolint:ireturn
	return o.value
}

// GetOrElse returns the value if present, or the provided default value if empty.
func (o Value[T]) GetOrElse(defaultValue T) T { //nolint:ireturn
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// GetOrElseFunc returns the value if present, or calls the provided function to get a default value if empty.
// This is useful when computing the default value is expensive.
func (o Value[T]) GetOrElseFunc(defaultFunc func() T) T { //nolint:ireturn
	if o.isSet {
		return o.value
	}

	return defaultFunc()
}

// OrElse returns this Value if it contains a value, or the alternative Value if empty.
func (o Value[T]) OrElse(alternative Value[T]) Value[T] {
	if o.isSet {
		return o
	}

	return alternative
}

// OrElseFunc returns this Value if it contains a value, or calls the provided function
// to get an alternative Value if empty. This is useful when computing the alternative is expensive.
func (o Value[T]) OrElseFunc(alternativeFunc func() Value[T]) Value[T] {
	if o.isSet {
		return o
	}

	return alternativeFunc()
}

// Equals reports whether two Values are equal: both empty, or both present
// with values that are equal under compare.Equal.
func (o Value[T]) Equals(other Value[T]) bool {
	return o.EqualsWith(other, compare.Equal[T])
}

// EqualsWith compares this Value with another using the provided equality function.
// Two Values are equal if both are empty, or both contain values that are equal according to the provided function.
func (o Value[T]) EqualsWith(other Value[T], eq func(T, T) bool) bool {
	if o.isSet != other.isSet {
		return false
	}

	if !o.isSet {
		return true
	}

	return eq(o.value, other.value)
}

// EqualsAny is Equals for an untyped argument. It returns false when other is not a Value[T].
func (o Value[T]) EqualsAny(other any) bool {
	v, ok := other.(Value[T])

	return ok && o.Equals(v)
}

// HashCode returns 0 for an empty Value and the value's hash code otherwise.
func (o Value[T]) HashCode() uint32 {
	if !o.isSet {
		return 0
	}

	return hashing.Of(o.value)
}

// Compare orders Values: None sorts before any present value and equals
// another None, while two present values are ordered by compare.Order.
// If T has no ordering the error wraps errors.ErrNotOrdered.
func (o Value[T]) Compare(other Value[T]) (int, error) {
	switch {
	case o.isSet && other.isSet:
		return compare.Order(o.value, other.value)
	case o.isSet:
		return 1, nil
	case other.isSet:
		return -1, nil
	default:
		return 0, nil
	}
}

// CompareAny is Compare for an untyped argument. The error wraps
// errors.ErrWrongType when other is not a Value[T].
func (o Value[T]) CompareAny(other any) (int, error) {
	v, ok := other.(Value[T])
	if !ok {
		return 0, fmt.Errorf("%w: expected %T, got %T", errors.ErrWrongType, o, other)
	}

	return o.Compare(v)
}

// Filter returns this Value if it contains a value that satisfies the predicate, or None otherwise.
func (o Value[T]) Filter(predicate func(T) bool) Value[T] {
	if o.isSet && predicate(o.value) {
		return o
	}

	return None[T]()
}

// Size returns the size of this Value as a set: 1 if it contains a value, 0 if empty.
func (o Value[T]) Size() int {
	if o.isSet {
		return 1
	}

	return 0
}

// String returns a string representation of the Value.
// Returns "Some(value)" if present, or "None" if empty.
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms the value inside the Value using the provided function.
// Returns Some(f(value)) if the Value contains a value, or None if empty.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}

// FlatMap transforms the value inside the Value using the provided function that returns a Value.
// This is useful for chaining Value-returning operations without nesting.
// Returns f(value) if the Value contains a value, or None if empty.
func FlatMap[T any, U any](o Value[T], f func(T) Value[U]) Value[U] {
	if o.isSet {
		return f(o.value)
	}

	return None[U]()
}

// MarshalJSON implements json.Marshaler.
// None is marshaled as null, Some(value) is marshaled as {"value": ...}.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.isSet {
		return []byte("null"), nil
	}

	return json.Marshal(map[string]T{"value": o.value})
}

// UnmarshalJSON implements json.Unmarshaler.
// null is unmarshaled as None, {"value": ...} is unmarshaled as Some(value).
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()

		return nil
	}

	var wrapper map[string]T
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	value, ok := wrapper["value"]
	if !ok {
		return errMissingValueField
	}

	*o = Some(value)

	return nil
}
