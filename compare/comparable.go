// Package compare provides utilities for comparing values.
package compare

import "reflect"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Equal reports whether a and b are structurally equal. If T implements
// Comparable[T] its Equals method decides; otherwise values are walked the
// way reflect.DeepEqual walks them, so slices, maps and pointers compare by
// content rather than identity. Unlike DeepEqual, NaN equals NaN at any
// depth, which keeps Equal reflexive, and nested values with their own
// Equals method are compared with it.
//
// Equal never panics, even when T is an interface type and a and b hold
// values of different or non-comparable dynamic types.
func Equal[T any](a, b T) bool {
	if c, ok := any(a).(Comparable[T]); ok {
		return c.Equals(b)
	}

	switch av := any(a).(type) {
	case string:
		bv, ok := any(b).(string)

		return ok && av == bv
	case int:
		bv, ok := any(b).(int)

		return ok && av == bv
	case bool:
		bv, ok := any(b).(bool)

		return ok && av == bv
	case float64:
		bv, ok := any(b).(float64)

		return ok && floatEqual(av, bv)
	case float32:
		bv, ok := any(b).(float32)

		return ok && floatEqual(float64(av), float64(bv))
	}

	return deepEqual(reflect.ValueOf(any(a)), reflect.ValueOf(any(b)), make(map[visit]bool))
}

// EqualFunc returns Equal specialised to T, for APIs that take an equality function.
func EqualFunc[T any]() func(a, b T) bool {
	return Equal[T]
}
