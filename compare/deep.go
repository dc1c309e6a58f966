package compare

import (
	"math"
	"reflect"
)

// visit records a pair of references already being compared, so cyclic
// structures terminate.
type visit struct {
	a, b uintptr
	typ  reflect.Type
}

var boolType = reflect.TypeFor[bool]()

// floatEqual is == except that NaN equals NaN.
func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func deepEqual(a, b reflect.Value, visited map[visit]bool) bool { //nolint:cyclop,funlen
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
	default:
	}

	if eq, ok := callEquals(a, b); ok {
		return eq
	}

	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if a.Pointer() == b.Pointer() && (a.Kind() != reflect.Slice || a.Len() == b.Len()) {
			return true
		}

		key := visit{a: a.Pointer(), b: b.Pointer(), typ: a.Type()}
		if visited[key] {
			return true
		}

		visited[key] = true
	default:
	}

	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return floatEqual(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		ac, bc := a.Complex(), b.Complex()

		return floatEqual(real(ac), real(bc)) && floatEqual(imag(ac), imag(bc))
	case reflect.String:
		return a.String() == b.String()
	case reflect.Array, reflect.Slice:
		if a.Len() != b.Len() {
			return false
		}

		for i := range a.Len() {
			if !deepEqual(a.Index(i), b.Index(i), visited) {
				return false
			}
		}

		return true
	case reflect.Struct:
		for i := range a.NumField() {
			if !deepEqual(a.Field(i), b.Field(i), visited) {
				return false
			}
		}

		return true
	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}

		iter := a.MapRange()
		for iter.Next() {
			other := b.MapIndex(iter.Key())
			if !other.IsValid() || !deepEqual(iter.Value(), other, visited) {
				return false
			}
		}

		return true
	case reflect.Pointer, reflect.Interface:
		return deepEqual(a.Elem(), b.Elem(), visited)
	case reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	default:
		// Non-nil funcs are never equal.
		return false
	}
}

// callEquals uses a value's own Equals(T) bool method when it has one.
func callEquals(a, b reflect.Value) (bool, bool) {
	if !a.CanInterface() || !b.CanInterface() {
		return false, false
	}

	method := a.MethodByName("Equals")
	if !method.IsValid() {
		return false, false
	}

	mt := method.Type()
	if mt.NumIn() != 1 || mt.In(0) != a.Type() || mt.NumOut() != 1 || mt.Out(0) != boolType {
		return false, false
	}

	return method.Call([]reflect.Value{b})[0].Bool(), true
}
