//nolint:ireturn
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is a value read from an environment variable, together with
// whether the variable was set and any error from parsing it. Options and
// Map refine a Reader; Value, ValueOrElse and ValueOrFatal end the chain.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// NewReader builds a Reader from raw parts, for values that don't come from os.Getenv.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		err:     err,
		value:   value,
	}
}

// Key returns the name of the environment variable.
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the parsed value, or an error wrapping ErrBadEnvVar or
// ErrEnvVarMissing.
func (e Reader[A]) Value() (A, error) {
	if e.err != nil {
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	}

	if !e.present {
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return e.value, nil
}

// ValueOrElse returns the value, or v if the variable is missing or malformed.
// A malformed value is logged before falling back.
func (e Reader[A]) ValueOrElse(v A) A {
	if e.HasValue() {
		return e.value
	}

	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "error", e.err, "fallback", v)
	}

	return v
}

// ValueOrFatal returns the value, or logs the error and exits the process.
func (e Reader[A]) ValueOrFatal() A {
	value, err := e.Value()
	if err != nil {
		slog.Error("error reading environment variable", "key", e.key, "error", err)
		os.Exit(1)
	}

	return value
}

// HasValue reports whether the variable was set and parsed cleanly.
func (e Reader[A]) HasValue() bool {
	return e.present && e.err == nil
}

// HasError reports whether parsing or validation failed.
func (e Reader[A]) HasError() bool {
	return e.err != nil
}

// Error returns the parse or validation error, if any.
func (e Reader[A]) Error() error {
	return e.err
}

func (e Reader[A]) String() string {
	switch {
	case e.err != nil:
		return fmt.Sprintf("%s=<error: %v>", e.key, e.err)
	case e.present:
		return fmt.Sprintf("%s=%v", e.key, e.value)
	default:
		return e.key + "=<not set>"
	}
}

// WithErrorIfMissing turns a missing variable into the given error.
// A Reader that is present, or already failed, is returned unchanged.
func (e Reader[A]) WithErrorIfMissing(err error) Reader[A] {
	if e.present || e.err != nil {
		return e
	}

	return Reader[A]{key: e.key, err: err}
}

// WithDefault fills in v when the variable is missing.
func (e Reader[A]) WithDefault(v A) Reader[A] {
	if e.present {
		return e
	}

	return Reader[A]{key: e.key, present: true, err: e.err, value: v}
}

// WithFallback replaces a missing variable with another Reader.
func (e Reader[A]) WithFallback(other Reader[A]) Reader[A] {
	if e.present {
		return e
	}

	return other
}

// Map transforms the value, keeping its type.
func (e Reader[A]) Map(f func(A) (A, error)) Reader[A] {
	return Map(e, f)
}

// Map transforms a Reader's value into another type. Missing or failed
// Readers pass through without calling f.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	if !env.present || env.err != nil {
		return Reader[B]{key: env.key, present: env.present, err: env.err}
	}

	val, err := f(env.value)

	return Reader[B]{key: env.key, present: true, err: err, value: val}
}
