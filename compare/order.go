package compare

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-generics/errors"
)

// Ordered is implemented by types with a three-way comparison, such as
// time.Time. Compare returns a negative number, zero or a positive number
// when the receiver sorts before, equal to or after other.
type Ordered[T any] interface {
	Compare(other T) int
}

// Sortable is implemented by types that provide equality plus a strict
// less-than relation.
type Sortable[T any] interface {
	Comparable[T]
	LessThan(other T) bool
}

// Order compares a and b using the ordering T provides. In order of
// preference that is an Ordered Compare method, a Sortable LessThan method,
// or the natural order of an underlying integer, float or string kind.
//
// If T has no ordering the returned error wraps errors.ErrNotOrdered. If T is
// an interface type and a and b hold different dynamic types the error wraps
// errors.ErrWrongType.
func Order[T any](a, b T) (int, error) {
	if o, ok := any(a).(Ordered[T]); ok {
		return o.Compare(b), nil
	}

	if s, ok := any(a).(Sortable[T]); ok {
		switch {
		case s.LessThan(b):
			return -1, nil
		case s.Equals(b):
			return 0, nil
		default:
			return 1, nil
		}
	}

	return orderKind(reflect.ValueOf(any(a)), reflect.ValueOf(any(b)))
}

func orderKind(a, b reflect.Value) (int, error) {
	if !a.IsValid() || !b.IsValid() {
		return 0, fmt.Errorf("%w: cannot order nil values", errors.ErrNotOrdered)
	}

	if a.Type() != b.Type() {
		return 0, fmt.Errorf("%w: cannot order %s against %s", errors.ErrWrongType, a.Type(), b.Type())
	}

	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float()), nil
	case reflect.String:
		return cmp.Compare(a.String(), b.String()), nil
	default:
		return 0, fmt.Errorf("%w: %s", errors.ErrNotOrdered, a.Type())
	}
}
