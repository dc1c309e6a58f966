package hashing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedCode uint32

func (f fixedCode) HashCode() uint32 { return uint32(f) }

type ptrCode struct{ v uint32 }

func (p *ptrCode) HashCode() uint32 { return p.v }

type point struct {
	x, y int
	tag  string
}

type node struct {
	next *node
	val  int
}

func TestSum32_EqualValuesHashEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b any
	}{
		{name: "nil", a: nil, b: nil},
		{name: "string", a: "hello", b: "hel" + "lo"},
		{name: "bytes", a: []byte("abc"), b: []byte("abc")},
		{name: "int", a: 42, b: 42},
		{name: "negative int64", a: int64(-9), b: int64(-9)},
		{name: "uint8", a: uint8(200), b: uint8(200)},
		{name: "signed zero", a: 0.0, b: math.Copysign(0, -1)},
		{name: "float32", a: float32(1.5), b: float32(1.5)},
		{name: "complex", a: complex(1, 2), b: complex(1, 2)},
		{name: "struct with unexported fields", a: point{1, 2, "p"}, b: point{1, 2, "p"}},
		{name: "distinct pointers to equal values", a: &point{1, 2, "p"}, b: &point{1, 2, "p"}},
		{name: "slices", a: []string{"a", "b"}, b: []string{"a", "b"}},
		{name: "arrays", a: [3]int{1, 2, 3}, b: [3]int{1, 2, 3}},
		{name: "maps", a: map[string]int{"a": 1, "b": 2, "c": 3}, b: map[string]int{"c": 3, "b": 2, "a": 1}},
		{name: "nested any", a: []any{1, "x", []int{2}}, b: []any{1, "x", []int{2}}},
		{name: "named string", a: HashableString("x"), b: HashableString("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, Sum32(tt.a), Sum32(tt.b))
		})
	}
}

func TestSum32_PositionSensitive(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, Sum32([]int{1, 2}), Sum32([]int{2, 1}))
	assert.NotEqual(t, Sum32([2]string{"a", "b"}), Sum32([2]string{"b", "a"}))
	assert.NotEqual(t, Sum32(point{1, 2, ""}), Sum32(point{2, 1, ""}))
}

func TestSum32_HashCoder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(99), Sum32(fixedCode(99)))
	assert.Equal(t, uint32(7), Sum32(&ptrCode{v: 7}))
	assert.Equal(t, uint32(0), Sum32((*ptrCode)(nil)))

	// Nested hash coders are honoured by the structural walk.
	assert.Equal(t, Sum32([]fixedCode{5}), Sum32([]uint32{5}))
}

func TestSum32_Cycles(t *testing.T) {
	t.Parallel()

	a := &node{val: 1}
	a.next = a

	b := &node{val: 1}
	b.next = b

	assert.Equal(t, Sum32(a), Sum32(b))
}

func TestSum32_Funcs(t *testing.T) {
	t.Parallel()

	var f func()

	assert.Equal(t, uint32(0), Sum32(f))
}

func TestOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Sum32("abc"), Of("abc"))
	assert.Equal(t, uint32(5), Of(5))
	assert.Equal(t, uint32(1), Of(true))
	assert.Equal(t, uint32(0), Of(false))
	assert.Equal(t, uint32(0), Of[*point](nil))
}

func TestSum32_NaN(t *testing.T) {
	t.Parallel()

	quiet := math.NaN()
	other := math.Float64frombits(0x7ff8000000000abc)

	assert.Equal(t, Sum32(quiet), Sum32(other))
	assert.Equal(t, Sum32(float32(quiet)), Sum32(other))
	assert.Equal(t, Sum32([]float64{1, quiet}), Sum32([]float64{1, other}))
	assert.Equal(t, Sum32(complex(quiet, 1)), Sum32(complex(other, 1)))
	assert.NotEqual(t, Sum32(quiet), Sum32(0.0))
}
