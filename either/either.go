// Package either provides a value that holds exactly one of two alternatives.
//
// A Value[A, B] is either a First carrying an A or a Second carrying a B.
// Only the slot selected by the variant is live; the other slot is always
// the zero value and is ignored by equality, hashing, and formatting.
//
// The zero Value is a First holding the zero value of A.
package either

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/amp-labs/amp-generics/compare"
	"github.com/amp-labs/amp-generics/errors"
	"github.com/amp-labs/amp-generics/hashing"
	"github.com/amp-labs/amp-generics/optional"
)

var errAmbiguousJSON = stderrors.New("either: JSON must hold exactly one of 'first' or 'second'")

// Value holds either an A (First) or a B (Second).
type Value[A any, B any] struct {
	first    A
	second   B
	isSecond bool
}

var (
	_ compare.Comparable[Value[int, string]] = Value[int, string]{}
	_ hashing.HashCoder                      = Value[int, string]{}
)

// MakeFirst returns a First holding a.
func MakeFirst[A any, B any](a A) Value[A, B] {
	return Value[A, B]{first: a}
}

// MakeSecond returns a Second holding b.
func MakeSecond[A any, B any](b B) Value[A, B] {
	return Value[A, B]{second: b, isSecond: true}
}

// IsFirst reports whether the Value holds an A.
func (e Value[A, B]) IsFirst() bool {
	return !e.isSecond
}

// IsSecond reports whether the Value holds a B.
func (e Value[A, B]) IsSecond() bool {
	return e.isSecond
}

// First returns the A payload. It panics with an error wrapping
// errors.ErrInvalidState when the Value is a Second.
func (e Value[A, B]) First() A { //nolint:ireturn
	if e.isSecond {
		panic(errors.InvalidState("either: First called on Second"))
	}

	return e.first
}

// Second returns the B payload. It panics with an error wrapping
// errors.ErrInvalidState when the Value is a First.
func (e Value[A, B]) Second() B { //nolint:ireturn
	if !e.isSecond {
		panic(errors.InvalidState("either: Second called on First"))
	}

	return e.second
}

// GetFirst returns the A payload and true, or the zero A and false.
func (e Value[A, B]) GetFirst() (A, bool) { //nolint:ireturn
	if e.isSecond {
		var zero A

		return zero, false
	}

	return e.first, true
}

// GetSecond returns the B payload and true, or the zero B and false.
func (e Value[A, B]) GetSecond() (B, bool) { //nolint:ireturn
	if !e.isSecond {
		var zero B

		return zero, false
	}

	return e.second, true
}

// FirstOption returns Some(a) for a First and None otherwise.
func (e Value[A, B]) FirstOption() optional.Value[A] {
	if e.isSecond {
		return optional.None[A]()
	}

	return optional.Some(e.first)
}

// SecondOption returns Some(b) for a Second and None otherwise.
func (e Value[A, B]) SecondOption() optional.Value[B] {
	if !e.isSecond {
		return optional.None[B]()
	}

	return optional.Some(e.second)
}

// Swap exchanges the variants: a First(a) becomes a Second(a) and vice versa.
func (e Value[A, B]) Swap() Value[B, A] {
	if e.isSecond {
		return MakeFirst[B, A](e.second)
	}

	return MakeSecond[B, A](e.first)
}

// Equals reports whether both Values are the same variant with equal live payloads.
func (e Value[A, B]) Equals(other Value[A, B]) bool {
	if e.isSecond != other.isSecond {
		return false
	}

	if e.isSecond {
		return compare.Equal(e.second, other.second)
	}

	return compare.Equal(e.first, other.first)
}

// EqualsAny is Equals for an untyped argument. It accepts a Value[A, B] or a
// non-nil *Value[A, B] and returns false for anything else.
func (e Value[A, B]) EqualsAny(other any) bool {
	switch o := other.(type) {
	case Value[A, B]:
		return e.Equals(o)
	case *Value[A, B]:
		return o != nil && e.Equals(*o)
	default:
		return false
	}
}

// HashCode returns the hash code of the live payload.
func (e Value[A, B]) HashCode() uint32 {
	if e.isSecond {
		return hashing.Of(e.second)
	}

	return hashing.Of(e.first)
}

// String renders the live payload with fmt.
func (e Value[A, B]) String() string {
	if e.isSecond {
		return fmt.Sprint(e.second)
	}

	return fmt.Sprint(e.first)
}

// Fold collapses e into a single value by applying onFirst or onSecond to the live payload.
func Fold[A any, B any, R any](e Value[A, B], onFirst func(A) R, onSecond func(B) R) R { //nolint:ireturn
	if e.isSecond {
		return onSecond(e.second)
	}

	return onFirst(e.first)
}

// MapFirst transforms the payload of a First. A Second passes through unchanged.
func MapFirst[A any, B any, C any](e Value[A, B], f func(A) C) Value[C, B] {
	if e.isSecond {
		return MakeSecond[C, B](e.second)
	}

	return MakeFirst[C, B](f(e.first))
}

// MapSecond transforms the payload of a Second. A First passes through unchanged.
func MapSecond[A any, B any, C any](e Value[A, B], f func(B) C) Value[A, C] {
	if !e.isSecond {
		return MakeFirst[A, C](e.first)
	}

	return MakeSecond[A, C](f(e.second))
}

// MarshalJSON encodes a First as {"first": a} and a Second as {"second": b}.
func (e Value[A, B]) MarshalJSON() ([]byte, error) {
	if e.isSecond {
		return json.Marshal(map[string]B{"second": e.second})
	}

	return json.Marshal(map[string]A{"first": e.first})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (e *Value[A, B]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	firstData, hasFirst := raw["first"]
	secondData, hasSecond := raw["second"]

	if hasFirst == hasSecond || len(raw) != 1 {
		return errAmbiguousJSON
	}

	if hasFirst {
		var a A
		if err := json.Unmarshal(firstData, &a); err != nil {
			return fmt.Errorf("either: first: %w", err)
		}

		*e = MakeFirst[A, B](a)

		return nil
	}

	var b B
	if err := json.Unmarshal(secondData, &b); err != nil {
		return fmt.Errorf("either: second: %w", err)
	}

	*e = MakeSecond[A, B](b)

	return nil
}
