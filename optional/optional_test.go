package optional

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/amp-labs/amp-generics/errors"
	"github.com/amp-labs/amp-generics/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	some := Some(42)
	assert.True(t, some.HasValue())
	assert.True(t, some.NonEmpty())
	assert.False(t, some.Empty())
	assert.Equal(t, 1, some.Size())

	val, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	none := None[int]()
	assert.False(t, none.HasValue())
	assert.True(t, none.Empty())
	assert.Equal(t, 0, none.Size())

	val, ok = none.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, val)
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var opt Value[string]

	assert.False(t, opt.HasValue())
	assert.True(t, opt.Equals(None[string]()))
}

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Some(5).Value())
	assert.Equal(t, 5, Some(5).GetOrPanic())

	assert.PanicsWithError(t, "invalid state: optional: value read from None", func() {
		None[int]().Value()
	})

	assert.PanicsWithError(t, "invalid state: optional: called GetOrPanic on None", func() {
		None[int]().GetOrPanic()
	})
}

func TestValue_PanicIsInvalidState(t *testing.T) {
	t.Parallel()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)

		err, ok := recovered.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, errors.ErrInvalidState)
	}()

	None[time.Time]().Value()
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Some(42).GetOrElse(99))
	assert.Equal(t, 99, None[int]().GetOrElse(99))
	assert.Equal(t, 42, Some(42).GetOrZero())
	assert.Equal(t, 0, None[int]().GetOrZero())

	called := false
	fallback := func() int {
		called = true

		return 99
	}

	assert.Equal(t, 42, Some(42).GetOrElseFunc(fallback))
	assert.False(t, called, "function should not be called for Some")
	assert.Equal(t, 99, None[int]().GetOrElseFunc(fallback))
	assert.True(t, called, "function should be called for None")
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	alternative := Some(99)

	assert.Equal(t, 42, Some(42).OrElse(alternative).Value())
	assert.Equal(t, 99, None[int]().OrElse(alternative).Value())
	assert.True(t, None[int]().OrElse(None[int]()).Empty())

	calls := 0
	alt := func() Value[int] {
		calls++

		return Some(7)
	}

	assert.Equal(t, 42, Some(42).OrElseFunc(alt).Value())
	assert.Equal(t, 7, None[int]().OrElseFunc(alt).Value())
	assert.Equal(t, 1, calls)
}

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   Value[int]
		expect bool
	}{
		{name: "some equal", a: Some(5), b: Some(5), expect: true},
		{name: "some different", a: Some(5), b: Some(6), expect: false},
		{name: "some vs none", a: Some(5), b: None[int](), expect: false},
		{name: "none vs some", a: None[int](), b: Some(0), expect: false},
		{name: "none vs none", a: None[int](), b: None[int](), expect: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expect, tt.a.Equals(tt.b))
			assert.Equal(t, tt.expect, tt.b.Equals(tt.a))
			assert.Equal(t, tt.expect, tt.a.EqualsAny(tt.b))

			if tt.expect {
				assert.Equal(t, tt.a.HashCode(), tt.b.HashCode())
			}
		})
	}
}

func TestEquals_ByContent(t *testing.T) {
	t.Parallel()

	assert.True(t, Some([]int{1, 2}).Equals(Some([]int{1, 2})))
	assert.False(t, Some([]int{1, 2}).Equals(Some([]int{2, 1})))
	assert.Equal(t, Some([]int{1, 2}).HashCode(), Some([]int{1, 2}).HashCode())
}

func TestEqualsWith(t *testing.T) {
	t.Parallel()

	sameParity := func(a, b int) bool { return a%2 == b%2 }

	assert.True(t, Some(2).EqualsWith(Some(4), sameParity))
	assert.False(t, Some(2).EqualsWith(Some(3), sameParity))
	assert.True(t, None[int]().EqualsWith(None[int](), sameParity))
	assert.False(t, None[int]().EqualsWith(Some(2), sameParity))
}

func TestEqualsAny(t *testing.T) {
	t.Parallel()

	assert.True(t, Some(5).EqualsAny(Some(5)))
	assert.False(t, Some(5).EqualsAny(5))
	assert.False(t, Some(5).EqualsAny(Some(int64(5))))
	assert.False(t, None[int]().EqualsAny(nil))
}

func TestHashCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0), None[string]().HashCode())
	assert.Equal(t, hashing.Of("abc"), Some("abc").HashCode())
}

func TestEquals_FloatEdgeValues(t *testing.T) {
	t.Parallel()

	otherNaN := math.Float64frombits(0x7ff8000000000abc)

	tests := []struct {
		name  string
		left  Value[float64]
		right Value[float64]
		equal bool
	}{
		{name: "NaN with itself", left: Some(math.NaN()), right: Some(math.NaN()), equal: true},
		{name: "NaN payloads", left: Some(math.NaN()), right: Some(otherNaN), equal: true},
		{name: "signed zeros", left: Some(0.0), right: Some(math.Copysign(0, -1)), equal: true},
		{name: "NaN and zero", left: Some(math.NaN()), right: Some(0.0), equal: false},
		{name: "NaN and empty", left: Some(math.NaN()), right: None[float64](), equal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.equal, tt.left.Equals(tt.right))
			assert.Equal(t, tt.equal, tt.right.Equals(tt.left))

			if tt.equal {
				assert.Equal(t, tt.left.HashCode(), tt.right.HashCode())
			}
		})
	}

	nan := Some(math.NaN())
	assert.True(t, nan.Equals(nan))
	assert.True(t, Some([]float64{math.NaN()}).Equals(Some([]float64{otherNaN})))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   Value[int]
		expect int
	}{
		{name: "none equals none", a: None[int](), b: None[int](), expect: 0},
		{name: "none before some", a: None[int](), b: Some(-100), expect: -1},
		{name: "some after none", a: Some(-100), b: None[int](), expect: 1},
		{name: "values less", a: Some(1), b: Some(2), expect: -1},
		{name: "values equal", a: Some(2), b: Some(2), expect: 0},
		{name: "values greater", a: Some(3), b: Some(2), expect: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := tt.a.Compare(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, result)

			result, err = tt.a.CompareAny(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, result)
		})
	}
}

func TestCompare_OrderedPayload(t *testing.T) {
	t.Parallel()

	now := time.Now()

	result, err := Some(now).Compare(Some(now.Add(-time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, 1, result)
}

func TestCompare_Errors(t *testing.T) {
	t.Parallel()

	_, err := Some([]int{1}).Compare(Some([]int{2}))
	require.ErrorIs(t, err, errors.ErrNotOrdered)

	// Presence still orders unorderable payloads.
	result, err := None[[]int]().Compare(Some([]int{2}))
	require.NoError(t, err)
	assert.Equal(t, -1, result)

	_, err = Some(1).CompareAny(1)
	require.ErrorIs(t, err, errors.ErrWrongType)

	_, err = Some(1).CompareAny(Some("1"))
	require.ErrorIs(t, err, errors.ErrWrongType)
}

func TestPointers(t *testing.T) {
	t.Parallel()

	assert.True(t, FromPointer[int](nil).Empty())

	n := 5
	opt := FromPointer(&n)
	assert.Equal(t, 5, opt.Value())

	n = 6
	assert.Equal(t, 5, opt.Value(), "FromPointer copies the value")

	p := opt.ToPointer()
	require.NotNil(t, p)
	assert.Equal(t, 5, *p)
	assert.Nil(t, None[int]().ToPointer())
}

func TestFilter(t *testing.T) {
	t.Parallel()

	isEven := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, 42, Some(42).Filter(isEven).Value())
	assert.True(t, Some(43).Filter(isEven).Empty())
	assert.True(t, None[int]().Filter(isEven).Empty())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(42)", Some(42).String())
	assert.Equal(t, "Some(hello)", Some("hello").String())
	assert.Equal(t, "None", None[int]().String())
}

func TestIteration(t *testing.T) {
	t.Parallel()

	var values []int

	for v := range Some(42).All() {
		values = append(values, v)
	}

	for v := range None[int]().All() {
		values = append(values, v)
	}

	Some(7).ForEach(func(v int) { values = append(values, v) })
	None[int]().ForEach(func(v int) { values = append(values, v) })

	assert.Equal(t, []int{42, 7}, values)
}

func TestMapAndFlatMap(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }
	assert.Equal(t, 42, Map(Some(21), double).Value())
	assert.True(t, Map(None[int](), double).Empty())

	toString := func(n int) string { return string(rune(n + '0')) }
	assert.Equal(t, "5", Map(Some(5), toString).Value())

	safeDivide := func(n int) Value[int] {
		if n == 0 {
			return None[int]()
		}

		return Some(100 / n)
	}

	assert.Equal(t, 10, FlatMap(Some(10), safeDivide).Value())
	assert.True(t, FlatMap(Some(0), safeDivide).Empty())
	assert.True(t, FlatMap(None[int](), safeDivide).Empty())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	type testStruct struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	data, err := json.Marshal(Some(testStruct{Name: "Alice", Age: 30}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":{"name":"Alice","age":30}}`, string(data))

	data, err = json.Marshal(None[int]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var opt Value[int]
	require.NoError(t, json.Unmarshal([]byte(`{"value":42}`), &opt))
	assert.True(t, opt.Equals(Some(42)))

	require.NoError(t, json.Unmarshal([]byte(`null`), &opt))
	assert.True(t, opt.Empty())

	err = json.Unmarshal([]byte(`{"other":42}`), &opt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing 'value' field")

	require.Error(t, json.Unmarshal([]byte(`{invalid}`), &opt))
}
