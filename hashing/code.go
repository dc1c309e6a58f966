package hashing

import (
	"math"
	"reflect"

	"github.com/zeebo/xxh3"
)

// maxDepth bounds how far Sum32 follows pointers and interfaces, which keeps
// cyclic structures from recursing forever. Anything deeper hashes to zero.
const maxDepth = 32

// HashCoder is implemented by types that compute their own 32-bit hash code.
// A HashCode must be consistent with the type's equality: values that are
// equal must return the same code.
type HashCoder interface {
	HashCode() uint32
}

// Of returns the 32-bit hash code of value. See Sum32.
func Of[T any](value T) uint32 {
	return Sum32(value)
}

// Sum32 returns a 32-bit hash code for any value. It is consistent with
// compare.Equal: a HashCoder supplies its own code, strings and byte slices
// are hashed with xxh3, numbers hash their bit patterns, and everything else
// is walked structurally the same way reflect.DeepEqual compares it.
//
// Codes are stable across processes; there is no random seed.
func Sum32(value any) uint32 { //nolint:cyclop
	switch typed := value.(type) {
	case nil:
		return 0
	case HashCoder:
		if isNilPointer(typed) {
			return 0
		}

		return typed.HashCode()
	case string:
		return fold(xxh3.HashString(typed))
	case []byte:
		return fold(xxh3.Hash(typed))
	case bool:
		return boolCode(typed)
	case int:
		return fold(uint64(typed)) //nolint:gosec
	case int8:
		return fold(uint64(typed)) //nolint:gosec
	case int16:
		return fold(uint64(typed)) //nolint:gosec
	case int32:
		return fold(uint64(typed)) //nolint:gosec
	case int64:
		return fold(uint64(typed)) //nolint:gosec
	case uint:
		return fold(uint64(typed))
	case uint8:
		return uint32(typed)
	case uint16:
		return uint32(typed)
	case uint32:
		return typed
	case uint64:
		return fold(typed)
	case float32:
		return floatCode(float64(typed))
	case float64:
		return floatCode(typed)
	default:
		return sumValue(reflect.ValueOf(value), 0)
	}
}

func sumValue(val reflect.Value, depth int) uint32 { //nolint:cyclop,funlen
	if !val.IsValid() || depth > maxDepth {
		return 0
	}

	if val.CanInterface() {
		if hc, ok := val.Interface().(HashCoder); ok {
			if isNilPointer(hc) {
				return 0
			}

			return hc.HashCode()
		}
	}

	switch val.Kind() {
	case reflect.Bool:
		return boolCode(val.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fold(uint64(val.Int())) //nolint:gosec
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fold(val.Uint())
	case reflect.Float32, reflect.Float64:
		return floatCode(val.Float())
	case reflect.Complex64, reflect.Complex128:
		c := val.Complex()

		return floatCode(real(c)) ^ Rotate(floatCode(imag(c)), 1)
	case reflect.String:
		return fold(xxh3.HashString(val.String()))
	case reflect.Slice:
		if val.IsNil() {
			return 0
		}

		if val.Type().Elem().Kind() == reflect.Uint8 {
			return fold(xxh3.Hash(val.Bytes()))
		}

		return sumSequence(val, depth)
	case reflect.Array:
		return sumSequence(val, depth)
	case reflect.Struct:
		var out uint32

		for i := range val.NumField() {
			out ^= Rotate(sumValue(val.Field(i), depth), i)
		}

		return out
	case reflect.Map:
		if val.IsNil() {
			return 0
		}

		// Entry order is random, so entries are summed rather than rotated by position.
		var out uint32

		iter := val.MapRange()
		for iter.Next() {
			out += sumValue(iter.Key(), depth+1) ^ Rotate(sumValue(iter.Value(), depth+1), 1)
		}

		return out
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return 0
		}

		return sumValue(val.Elem(), depth+1)
	case reflect.Chan, reflect.UnsafePointer:
		return fold(uint64(val.Pointer()))
	default:
		// Funcs are only ever equal when both are nil.
		return 0
	}
}

func sumSequence(val reflect.Value, depth int) uint32 {
	var out uint32

	for i := range val.Len() {
		out ^= Rotate(sumValue(val.Index(i), depth+1), i)
	}

	return out
}

func fold(v uint64) uint32 {
	return uint32(v) ^ uint32(v>>32) //nolint:gosec
}

func boolCode(b bool) uint32 {
	if b {
		return 1
	}

	return 0
}

// nanCode is shared by every NaN bit pattern, since compare.Equal treats all NaNs as equal.
const nanCode uint32 = 0x7fc00000

func floatCode(f float64) uint32 {
	if f == 0 {
		// +0 and -0 compare equal, so they must hash the same.
		return 0
	}

	if math.IsNaN(f) {
		return nanCode
	}

	return fold(math.Float64bits(f))
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
