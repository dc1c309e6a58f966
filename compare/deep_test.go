package compare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type measurement struct {
	Label string
	Value float64
}

type ring struct {
	next *ring
	val  float64
}

type wrapper struct {
	inner TestStruct
}

func TestEqual_NaN(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	otherNaN := math.Float64frombits(0x7ff8000000000abc)

	tests := []struct {
		name     string
		equal    func() bool
		expected bool
	}{
		{name: "float64", equal: func() bool { return Equal(nan, nan) }, expected: true},
		{name: "different NaN payloads", equal: func() bool { return Equal(nan, otherNaN) }, expected: true},
		{name: "float32", equal: func() bool { return Equal(float32(nan), float32(nan)) }, expected: true},
		{name: "NaN vs number", equal: func() bool { return Equal(nan, 1.0) }, expected: false},
		{name: "in interface", equal: func() bool { return Equal[any](nan, nan) }, expected: true},
		{name: "in slice", equal: func() bool { return Equal([]float64{1, nan}, []float64{1, nan}) }, expected: true},
		{name: "in array", equal: func() bool { return Equal([2]float64{nan, 2}, [2]float64{nan, 2}) }, expected: true},
		{
			name:     "in struct",
			equal:    func() bool { return Equal(measurement{"a", nan}, measurement{"a", nan}) },
			expected: true,
		},
		{
			name:     "as map value",
			equal:    func() bool { return Equal(map[string]float64{"x": nan}, map[string]float64{"x": nan}) },
			expected: true,
		},
		{name: "in complex", equal: func() bool { return Equal(complex(nan, 1), complex(nan, 1)) }, expected: true},
		{
			name: "behind pointer",
			equal: func() bool {
				a, b := nan, nan

				return Equal(&a, &b)
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.equal())
		})
	}
}

func TestEqual_SignedZero(t *testing.T) {
	t.Parallel()

	negZero := math.Copysign(0, -1)

	assert.True(t, Equal(0.0, negZero))
	assert.True(t, Equal([]float64{negZero}, []float64{0}))
}

func TestEqual_NestedComparable(t *testing.T) {
	t.Parallel()

	a := wrapper{inner: TestStruct{ID: 1, Name: "x"}}
	b := wrapper{inner: TestStruct{ID: 1, Name: "y"}}

	assert.True(t, Equal([]TestStruct{{ID: 2, Name: "a"}}, []TestStruct{{ID: 2, Name: "b"}}))
	// Unexported fields are walked structurally.
	assert.False(t, Equal(a, b))
}

func TestEqual_Cycles(t *testing.T) {
	t.Parallel()

	a := &ring{val: math.NaN()}
	a.next = a

	b := &ring{val: math.NaN()}
	b.next = b

	assert.True(t, Equal(a, b))
	assert.True(t, Equal(a, a))
}

func TestEqual_Funcs(t *testing.T) {
	t.Parallel()

	var nilFunc func()

	assert.True(t, Equal(nilFunc, nilFunc))
	assert.False(t, Equal(func() {}, func() {}))
}
