package tuplegen

import (
	"errors"
	"fmt"
	"go/token"
)

// ErrInvalidConfig is returned when a Config cannot produce a tuple family.
var ErrInvalidConfig = errors.New("invalid tuplegen config")

const (
	// MinArity is the smallest tuple the generator emits; a one-element
	// tuple is just the element.
	MinArity = 2

	// MaxArity is bounded by the positional accessor names in ordinals.
	MaxArity = 10
)

// Config controls a generator run.
type Config struct {
	// Package is the name of the package the generated file belongs to.
	Package string

	// MinArity and MaxArity bound (inclusively) the arities that are emitted.
	MinArity int
	MaxArity int
}

// DefaultConfig returns the configuration used for the tuple package.
func DefaultConfig() Config {
	return Config{
		Package:  "tuple",
		MinArity: MinArity,
		MaxArity: MaxArity,
	}
}

// Validate checks that the config describes a non-empty arity range the
// generator can name, and a legal package identifier.
func (c Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("%w: package %q is not a Go identifier", ErrInvalidConfig, c.Package)
	}

	if c.MinArity < MinArity || c.MaxArity > MaxArity {
		return fmt.Errorf("%w: arities must lie within [%d, %d], got [%d, %d]",
			ErrInvalidConfig, MinArity, MaxArity, c.MinArity, c.MaxArity)
	}

	if c.MinArity > c.MaxArity {
		return fmt.Errorf("%w: min arity %d exceeds max arity %d", ErrInvalidConfig, c.MinArity, c.MaxArity)
	}

	return nil
}
