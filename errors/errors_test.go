package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidState(t *testing.T) {
	t.Parallel()

	err := InvalidState("slot %s is not live", "second")

	require.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, "invalid state: slot second is not live", err.Error())
	assert.NotErrorIs(t, err, ErrWrongType)
}

func TestCollection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		add     []error
		wantLen int
	}{
		{name: "empty", add: nil, wantLen: 0},
		{name: "nil errors are ignored", add: []error{nil, nil}, wantLen: 0},
		{name: "single error", add: []error{ErrArity}, wantLen: 1},
		{name: "mixed", add: []error{ErrArity, nil, ErrWrongType}, wantLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &Collection{}
			for _, err := range tt.add {
				c.Add(err)
			}

			assert.Equal(t, tt.wantLen, c.Len())
			assert.Equal(t, tt.wantLen > 0, c.HasError())

			for _, err := range tt.add {
				if err != nil {
					require.ErrorIs(t, c.GetError(), err)
				}
			}
		})
	}
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		assert.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		err1 := errors.New("error 1") //nolint:err113

		c := &Collection{}
		c.Add(err1)

		assert.Equal(t, err1, c.GetError())
	})

	t.Run("nil after clear", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrWrongType)
		c.Clear()

		assert.NoError(t, c.GetError())
		assert.False(t, c.HasError())
	})
}

func TestCollection_Addf(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Addf(nil, "slot %d", 0)
	c.Addf(ErrWrongType, "slot %d", 1)
	c.Addf(ErrArity, "slot %d", 2)

	require.Equal(t, 2, c.Len())

	err := c.GetError()
	require.ErrorIs(t, err, ErrWrongType)
	require.ErrorIs(t, err, ErrArity)
	assert.Contains(t, err.Error(), "slot 1: wrong type")
	assert.Contains(t, err.Error(), "slot 2: wrong number of elements")
}
