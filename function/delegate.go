package function

// Predicate reports whether a value satisfies a condition.
type Predicate[T any] func(T) bool

// Converter maps a T to a U.
type Converter[T, U any] func(T) U

// Comparison orders two values: negative when a < b, zero when equal, positive when a > b.
type Comparison[T any] func(a, b T) int

// Test calls the predicate.
func (p Predicate[T]) Test(v T) bool {
	return p(v)
}

// Not returns the negation of p.
func (p Predicate[T]) Not() Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// And returns a predicate satisfied when both p and other are. other is not
// evaluated when p is false.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) && other(v) }
}

// Or returns a predicate satisfied when either p or other is. other is not
// evaluated when p is true.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) || other(v) }
}

// Convert calls the converter.
func (c Converter[T, U]) Convert(v T) U { //nolint:ireturn
	return c(v)
}

// Compare calls the comparison.
func (c Comparison[T]) Compare(a, b T) int {
	return c(a, b)
}

// Reverse returns the comparison with its order flipped.
func (c Comparison[T]) Reverse() Comparison[T] {
	return func(a, b T) int { return c(b, a) }
}

// ToPredicate converts a plain function into a Predicate. A nil function yields a nil Predicate.
func ToPredicate[T any](f Function1[T, bool]) Predicate[T] {
	return Predicate[T](f)
}

// FromPredicate converts a Predicate back into a plain function.
func FromPredicate[T any](p Predicate[T]) Function1[T, bool] {
	return p
}

// ToConverter converts a plain function into a Converter.
func ToConverter[T, U any](f Function1[T, U]) Converter[T, U] {
	return Converter[T, U](f)
}

// FromConverter converts a Converter back into a plain function.
func FromConverter[T, U any](c Converter[T, U]) Function1[T, U] {
	return c
}

// ToComparison converts a plain function into a Comparison.
func ToComparison[T any](f Function2[T, T, int]) Comparison[T] {
	return Comparison[T](f)
}

// FromComparison converts a Comparison back into a plain function.
func FromComparison[T any](c Comparison[T]) Function2[T, T, int] {
	return c
}
