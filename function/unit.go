package function

// Unit is the result type of a function that returns nothing useful. It has
// exactly one value, Unit{}.
type Unit struct{}

// String returns "()".
func (Unit) String() string {
	return "()"
}

// FromAction0 turns a procedure into a Function0 returning Unit.
func FromAction0(f Action0) Function0[Unit] {
	return func() Unit {
		f()

		return Unit{}
	}
}

// FromAction1 turns a one-argument procedure into a Function1 returning Unit.
func FromAction1[A any](f Action1[A]) Function1[A, Unit] {
	return func(a A) Unit {
		f(a)

		return Unit{}
	}
}

func FromAction2[A, B any](f Action2[A, B]) Function2[A, B, Unit] {
	return func(a A, b B) Unit {
		f(a, b)

		return Unit{}
	}
}
