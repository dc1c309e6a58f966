package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// CaseInsensitiveString demonstrates custom equality semantics.
type CaseInsensitiveString string

func (s CaseInsensitiveString) Equals(other CaseInsensitiveString) bool {
	return len(s) == len(other) && toLower(string(s)) == toLower(string(other))
}

func toLower(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'A' && c <= 'Z' {
			out[i] = c + 'a' - 'A'
		}
	}

	return string(out)
}

// TestStruct is a struct that implements Comparable with custom equality logic.
type TestStruct struct {
	ID   int
	Name string
}

func (t TestStruct) Equals(other TestStruct) bool {
	return t.ID == other.ID
}

func TestEquals_Function(t *testing.T) {
	t.Parallel()

	assert.True(t, Equals(CaseInsensitiveString("Hello"), "hELLO"))
	assert.False(t, Equals(CaseInsensitiveString("Hello"), "world"))
	assert.True(t, Equals(TestStruct{ID: 1, Name: "Alice"}, TestStruct{ID: 1, Name: "Bob"}))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		equal    func() bool
		expected bool
	}{
		{name: "equal strings", equal: func() bool { return Equal("a", "a") }, expected: true},
		{name: "different strings", equal: func() bool { return Equal("a", "b") }, expected: false},
		{name: "equal ints", equal: func() bool { return Equal(1, 1) }, expected: true},
		{name: "bools", equal: func() bool { return Equal(true, false) }, expected: false},
		{name: "floats", equal: func() bool { return Equal(1.5, 1.5) }, expected: true},
		{
			name:     "slices by content",
			equal:    func() bool { return Equal([]int{1, 2}, []int{1, 2}) },
			expected: true,
		},
		{
			name:     "maps by content",
			equal:    func() bool { return Equal(map[string]int{"a": 1}, map[string]int{"a": 1}) },
			expected: true,
		},
		{
			name: "pointers by content",
			equal: func() bool {
				a, b := 3, 3

				return Equal(&a, &b)
			},
			expected: true,
		},
		{
			name:     "custom equality wins",
			equal:    func() bool { return Equal(CaseInsensitiveString("ABC"), "abc") },
			expected: true,
		},
		{
			name:     "custom equality ignores other fields",
			equal:    func() bool { return Equal(TestStruct{ID: 1, Name: "x"}, TestStruct{ID: 1, Name: "y"}) },
			expected: true,
		},
		{
			name:     "interfaces with different dynamic types",
			equal:    func() bool { return Equal[any]("1", 1) },
			expected: false,
		},
		{
			name:     "interfaces with non-comparable dynamic types",
			equal:    func() bool { return Equal[any]([]int{1}, []int{1}) },
			expected: true,
		},
		{
			name:     "nil interfaces",
			equal:    func() bool { return Equal[any](nil, nil) },
			expected: true,
		},
		{
			name:     "nil and empty slice differ",
			equal:    func() bool { return Equal([]int(nil), []int{}) },
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.equal())
		})
	}
}

func TestEqualFunc(t *testing.T) {
	t.Parallel()

	eq := EqualFunc[[]string]()

	assert.True(t, eq([]string{"a"}, []string{"a"}))
	assert.False(t, eq([]string{"a"}, []string{"b"}))
}
