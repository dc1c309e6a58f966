// Package hashing provides the hash machinery shared by the value types in
// this module: the rotation mixer used to combine element hashes, 32-bit hash
// codes for arbitrary values, and digest-style hashing of Hashable objects.
package hashing

import (
	"crypto/md5" //nolint:gosec
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"math"
	"strconv"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

var (
	_ HashFunc = Sha256
	_ HashFunc = Md5
	_ HashFunc = XXH3
	_ HashFunc = XXHash32
)

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// Md5 returns the MD5 hashing of the given Hashable as a hex-encoded string.
func Md5(hashable Hashable) (string, error) {
	return digest(md5.New(), hashable) //nolint:gosec
}

// XXH3 returns the 64-bit XXH3 hashing of the given Hashable as 16 hex digits.
// It is much faster than the cryptographic hashes and is the right choice for
// fingerprinting values that only need to be compared, not authenticated.
func XXH3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// XXHash32 returns the 32-bit xxHash of the given Hashable as 8 hex digits.
func XXHash32(hashable Hashable) (string, error) {
	h := xxhash.New32()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return fmt.Sprintf("%08x", h.Sum32()), nil
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Write feeds a canonical encoding of value into h. Hashable values write
// themselves; strings and byte slices are length prefixed so that adjacent
// values cannot run together; numbers are written as fixed-width little
// endian. Anything else contributes its Sum32 code.
func Write(h hash.Hash, value any) error { //nolint:cyclop
	var buf []byte

	switch typed := value.(type) {
	case Hashable:
		if isNilPointer(typed) {
			buf = binary.LittleEndian.AppendUint32(buf, 0)

			break
		}

		return typed.UpdateHash(h)
	case string:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(typed)))
		buf = append(buf, typed...)
	case []byte:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(typed)))
		buf = append(buf, typed...)
	case bool:
		buf = append(buf, byte(boolCode(typed)))
	case int:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(typed)) //nolint:gosec
	case int32:
		buf = binary.LittleEndian.AppendUint32(buf, uint32(typed)) //nolint:gosec
	case int64:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(typed)) //nolint:gosec
	case uint:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(typed))
	case uint32:
		buf = binary.LittleEndian.AppendUint32(buf, typed)
	case uint64:
		buf = binary.LittleEndian.AppendUint64(buf, typed)
	case float64:
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(typed))
	default:
		buf = binary.LittleEndian.AppendUint32(buf, Sum32(value))
	}

	_, err := h.Write(buf)

	return err
}

// HashableString is a string that implements Hashable.
type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))
	if err != nil {
		return err
	}

	return nil
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

// HashableBytes is a byte slice that implements Hashable.
type HashableBytes []byte

func (b HashableBytes) String() string {
	return hex.EncodeToString(b)
}

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

func (b HashableBytes) Equals(other HashableBytes) bool {
	return string(b) == string(other)
}

// HashableInt is an int that implements Hashable. It is written as 8 bytes,
// so it hashes identically to a HashableInt64 of the same value.
type HashableInt int

func (i HashableInt) String() string {
	return strconv.Itoa(int(i))
}

func (i HashableInt) UpdateHash(h hash.Hash) error {
	return HashableInt64(i).UpdateHash(h)
}

func (i HashableInt) Equals(other HashableInt) bool {
	return i == other
}

// HashableInt64 is an int64 that implements Hashable.
type HashableInt64 int64

func (i HashableInt64) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	_, err := h.Write(binary.LittleEndian.AppendUint64(nil, uint64(i))) //nolint:gosec

	return err
}

func (i HashableInt64) Equals(other HashableInt64) bool {
	return i == other
}

// HashableBool is a bool that implements Hashable.
type HashableBool bool

func (b HashableBool) String() string {
	return strconv.FormatBool(bool(b))
}

func (b HashableBool) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte{byte(boolCode(bool(b)))})

	return err
}

func (b HashableBool) Equals(other HashableBool) bool {
	return b == other
}

// HashableFloat64 is a float64 that implements Hashable.
type HashableFloat64 float64

func (f HashableFloat64) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	_, err := h.Write(binary.LittleEndian.AppendUint64(nil, math.Float64bits(float64(f))))

	return err
}

func (f HashableFloat64) Equals(other HashableFloat64) bool {
	return f == other
}
