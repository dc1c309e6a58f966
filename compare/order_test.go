package compare

import (
	"testing"
	"time"

	"github.com/amp-labs/amp-generics/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priority int

type version struct {
	major, minor int
}

func (v version) Equals(other version) bool {
	return v == other
}

func (v version) LessThan(other version) bool {
	if v.major != other.major {
		return v.major < other.major
	}

	return v.minor < other.minor
}

func TestOrder(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name   string
		order  func() (int, error)
		expect int
	}{
		{name: "ints less", order: func() (int, error) { return Order(1, 2) }, expect: -1},
		{name: "ints equal", order: func() (int, error) { return Order(2, 2) }, expect: 0},
		{name: "uints greater", order: func() (int, error) { return Order(uint8(9), uint8(2)) }, expect: 1},
		{name: "floats", order: func() (int, error) { return Order(1.5, 0.5) }, expect: 1},
		{name: "strings", order: func() (int, error) { return Order("a", "b") }, expect: -1},
		{name: "named kinds", order: func() (int, error) { return Order(priority(3), priority(1)) }, expect: 1},
		{name: "ordered method", order: func() (int, error) { return Order(now, now.Add(time.Second)) }, expect: -1},
		{
			name:   "sortable less",
			order:  func() (int, error) { return Order(version{1, 2}, version{1, 3}) },
			expect: -1,
		},
		{
			name:   "sortable equal",
			order:  func() (int, error) { return Order(version{1, 2}, version{1, 2}) },
			expect: 0,
		},
		{
			name:   "sortable greater",
			order:  func() (int, error) { return Order(version{2, 0}, version{1, 9}) },
			expect: 1,
		},
		{name: "interface same dynamic type", order: func() (int, error) { return Order[any](1, 5) }, expect: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := tt.order()
			require.NoError(t, err)
			assert.Equal(t, tt.expect, result)
		})
	}
}

func TestOrder_Errors(t *testing.T) {
	t.Parallel()

	_, err := Order([]int{1}, []int{2})
	require.ErrorIs(t, err, errors.ErrNotOrdered)

	_, err = Order(struct{ A int }{1}, struct{ A int }{2})
	require.ErrorIs(t, err, errors.ErrNotOrdered)

	_, err = Order[any](1, "1")
	require.ErrorIs(t, err, errors.ErrWrongType)

	_, err = Order[any](nil, nil)
	require.ErrorIs(t, err, errors.ErrNotOrdered)
}
