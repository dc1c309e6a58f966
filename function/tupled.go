package function

import "github.com/amp-labs/amp-generics/tuple"

// Tupled2 adapts a two-argument function to take a single Tuple2.
func Tupled2[A, B, R any](f Function2[A, B, R]) Function1[tuple.Tuple2[A, B], R] {
	return func(t tuple.Tuple2[A, B]) R {
		return f(t.First(), t.Second())
	}
}

// Untupled2 is the inverse of Tupled2.
func Untupled2[A, B, R any](f Function1[tuple.Tuple2[A, B], R]) Function2[A, B, R] {
	return func(a A, b B) R {
		return f(tuple.NewTuple2(a, b))
	}
}

// Tupled3 adapts a three-argument function to take a single Tuple3.
func Tupled3[A, B, C, R any](f Function3[A, B, C, R]) Function1[tuple.Tuple3[A, B, C], R] {
	return func(t tuple.Tuple3[A, B, C]) R {
		return f(t.First(), t.Second(), t.Third())
	}
}

// Untupled3 is the inverse of Tupled3.
func Untupled3[A, B, C, R any](f Function1[tuple.Tuple3[A, B, C], R]) Function3[A, B, C, R] {
	return func(a A, b B, c C) R {
		return f(tuple.NewTuple3(a, b, c))
	}
}

// Tupled4 adapts a four-argument function to take a single Tuple4.
func Tupled4[A, B, C, D, R any](f Function4[A, B, C, D, R]) Function1[tuple.Tuple4[A, B, C, D], R] {
	return func(t tuple.Tuple4[A, B, C, D]) R {
		return f(t.First(), t.Second(), t.Third(), t.Fourth())
	}
}

// Untupled4 is the inverse of Tupled4.
func Untupled4[A, B, C, D, R any](f Function1[tuple.Tuple4[A, B, C, D], R]) Function4[A, B, C, D, R] {
	return func(a A, b B, c C, d D) R {
		return f(tuple.NewTuple4(a, b, c, d))
	}
}

// Tupled5 adapts a five-argument function to take a single Tuple5.
func Tupled5[A, B, C, D, E, R any](
	f Function5[A, B, C, D, E, R],
) Function1[tuple.Tuple5[A, B, C, D, E], R] {
	return func(t tuple.Tuple5[A, B, C, D, E]) R {
		return f(t.First(), t.Second(), t.Third(), t.Fourth(), t.Fifth())
	}
}

// Untupled5 is the inverse of Tupled5.
func Untupled5[A, B, C, D, E, R any](
	f Function1[tuple.Tuple5[A, B, C, D, E], R],
) Function5[A, B, C, D, E, R] {
	return func(a A, b B, c C, d D, e E) R {
		return f(tuple.NewTuple5(a, b, c, d, e))
	}
}
