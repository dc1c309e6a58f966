package envutil

// Option refines a Reader. String, Bool, Int and SlogLevel apply their
// options in order after parsing.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies a value for a missing variable.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// IfMissing makes a missing variable fail with err.
func IfMissing[T any](err error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithErrorIfMissing(err)
	}
}

// Fallback substitutes another Reader for a missing variable.
func Fallback[T any](f Reader[T]) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithFallback(f)
	}
}

// Validate runs f on a present value; a non-nil result becomes the Reader's error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.Map(func(val T) (T, error) {
			return val, f(val)
		})
	}
}
