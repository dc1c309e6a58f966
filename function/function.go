// Package function names the shapes of function and procedure values.
//
// FunctionN and ActionN are aliases: any func with the matching signature
// is already one, with no conversion. Predicate, Converter and Comparison are
// distinct named types for APIs that want a nominal delegate; convert
// between the two forms with the To/From helpers.
//
// TupledN and UntupledN bridge n-argument functions and functions taking a
// single tuple.TupleN. Unit is the result type of a procedure adapted into a
// function.
package function

// Function0 takes no arguments and returns R.
type Function0[R any] = func() R

// Function1 takes an A and returns R.
type Function1[A, R any] = func(A) R

// Function2 takes an A and a B and returns R.
type Function2[A, B, R any] = func(A, B) R

type Function3[A, B, C, R any] = func(A, B, C) R

type Function4[A, B, C, D, R any] = func(A, B, C, D) R

type Function5[A, B, C, D, E, R any] = func(A, B, C, D, E) R

// Action0 is a procedure with no arguments.
type Action0 = func()

// Action1 is a procedure taking an A.
type Action1[A any] = func(A)

type Action2[A, B any] = func(A, B)

type Action3[A, B, C any] = func(A, B, C)

type Action4[A, B, C, D any] = func(A, B, C, D)

type Action5[A, B, C, D, E any] = func(A, B, C, D, E)
