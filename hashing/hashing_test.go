package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"testing"

	"github.com/OneOfOne/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

func TestDigests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fn     HashFunc
		input  Hashable
		expect string
	}{
		{
			name:   "sha256 empty string",
			fn:     Sha256,
			input:  HashableString(""),
			expect: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:   "sha256 simple string",
			fn:     Sha256,
			input:  HashableString("hello"),
			expect: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:   "sha256 simple bytes",
			fn:     Sha256,
			input:  HashableBytes([]byte("hello")),
			expect: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:   "md5 empty string",
			fn:     Md5,
			input:  HashableString(""),
			expect: "d41d8cd98f00b204e9800998ecf8427e",
		},
		{
			name:   "md5 string with spaces",
			fn:     Md5,
			input:  HashableString("hello world"),
			expect: "5eb63bbbe01eeed093cb22bb8f5acdc3",
		},
		{
			name:   "xxh3 simple string",
			fn:     XXH3,
			input:  HashableString("hello"),
			expect: fmt.Sprintf("%016x", xxh3.HashString("hello")),
		},
		{
			name:   "xxh3 bytes match string",
			fn:     XXH3,
			input:  HashableBytes([]byte("hello world")),
			expect: fmt.Sprintf("%016x", xxh3.HashString("hello world")),
		},
		{
			name:   "xxhash32 simple string",
			fn:     XXHash32,
			input:  HashableString("hello"),
			expect: fmt.Sprintf("%08x", xxhash.ChecksumString32("hello")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := tt.fn(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, result)
		})
	}
}

// mockHashable is a test implementation of Hashable that can return errors.
type mockHashable struct {
	err error
}

func (m mockHashable) UpdateHash(h hash.Hash) error {
	if m.err != nil {
		return m.err
	}

	_, err := h.Write([]byte("test"))

	return err
}

var errHashTest = errors.New("hash error")

func TestHashFunctions_Error(t *testing.T) {
	t.Parallel()

	mock := mockHashable{err: errHashTest}

	for name, fn := range map[string]HashFunc{
		"Sha256":   Sha256,
		"Md5":      Md5,
		"XXH3":     XXH3,
		"XXHash32": XXHash32,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result, err := fn(mock)
			require.ErrorIs(t, err, errHashTest)
			assert.Empty(t, result)
		})
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	sum := func(values ...any) string {
		h := sha256.New()

		for _, v := range values {
			require.NoError(t, Write(h, v))
		}

		return hex.EncodeToString(h.Sum(nil))
	}

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sum("a", 1, true, 2.5), sum("a", 1, true, 2.5))
	})

	t.Run("strings are length prefixed", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, sum("ab", "c"), sum("a", "bc"))
	})

	t.Run("hashable delegates", func(t *testing.T) {
		t.Parallel()

		h := sha256.New()
		require.NoError(t, Write(h, HashableString("hello")))

		assert.Equal(t,
			"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
			hex.EncodeToString(h.Sum(nil)))
	})

	t.Run("hashable error propagates", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, Write(sha256.New(), mockHashable{err: errHashTest}), errHashTest)
	})

	t.Run("other values use their hash code", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, sum([]int{1, 2}), sum([]int{1, 2}))
		assert.NotEqual(t, sum([]int{1, 2}), sum([]int{2, 1}))
	})
}

func TestHashableWrappers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", HashableString("hello").String())
	assert.True(t, HashableString("a").Equals("a"))
	assert.False(t, HashableString("a").Equals("b"))

	assert.Equal(t, "0aff", HashableBytes{0x0a, 0xff}.String())
	assert.True(t, HashableBytes("x").Equals(HashableBytes("x")))

	assert.Equal(t, "-7", HashableInt(-7).String())
	assert.True(t, HashableInt(3).Equals(3))

	assert.Equal(t, "true", HashableBool(true).String())
	assert.False(t, HashableBool(true).Equals(false))

	assert.Equal(t, "2.5", HashableFloat64(2.5).String())

	intDigest, err := Sha256(HashableInt(42))
	require.NoError(t, err)

	int64Digest, err := Sha256(HashableInt64(42))
	require.NoError(t, err)

	assert.Equal(t, int64Digest, intDigest)
}
