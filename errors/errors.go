// Package errors holds the sentinel errors shared by the value types in this
// module, plus a small accumulator for reporting several failures at once.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState signals misuse of a guarded accessor, such as reading
	// the value of an empty optional or the wrong side of an either.
	ErrInvalidState = errors.New("invalid state")

	// ErrWrongType is returned when an untyped argument is not of the type
	// the receiver expects.
	ErrWrongType = errors.New("wrong type")

	// ErrNotOrdered is returned when a comparison is requested for a type
	// that has no ordering.
	ErrNotOrdered = errors.New("type has no ordering")

	// ErrArity is returned when a serialized tuple has the wrong number of elements.
	ErrArity = errors.New("wrong number of elements")
)

// InvalidState builds an error wrapping ErrInvalidState. Guarded accessors
// panic with the returned value so callers can recover and test it with errors.Is.
func InvalidState(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Addf wraps err with a formatted prefix before adding it. Nil errors are ignored.
func (c *Collection) Addf(err error, format string, args ...any) {
	if err != nil {
		c.errors = append(c.errors, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err))
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
