// Package envutil reads typed configuration from environment variables.
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-generics/tuple"
)

// Intish is the set of signed integer types Int can parse into.
type Intish interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String reads a variable as-is.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

// Bool reads a variable with strconv.ParseBool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), parseBool), opts)
}

// Int reads a base-10 integer, rejecting values that overflow I.
func Int[I Intish](key string, opts ...Option[I]) Reader[I] {
	return apply(Map(get(key), parseInt[I]), opts)
}

// SlogLevel reads a log level such as "debug", "INFO" or "warn+2".
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(key), parseSlogLevel), opts)
}

// Combine2 joins two Readers into one holding a Tuple2. The result is
// present only when both inputs are, and carries every input error.
func Combine2[A any, B any](first Reader[A], second Reader[B]) Reader[tuple.Tuple2[A, B]] {
	key := first.key + "+" + second.key

	switch {
	case first.err != nil || second.err != nil:
		return Reader[tuple.Tuple2[A, B]]{key: key, err: errors.Join(first.err, second.err)}
	case !first.present || !second.present:
		return Reader[tuple.Tuple2[A, B]]{key: key}
	default:
		return Reader[tuple.Tuple2[A, B]]{
			key:     key,
			present: true,
			value:   tuple.NewTuple2(first.value, second.value),
		}
	}
}

func parseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}

func parseInt[I Intish](s string) (I, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}

	out := I(n)
	if int64(out) != n {
		return 0, fmt.Errorf("%w: %d", strconv.ErrRange, n)
	}

	return out, nil
}

func parseSlogLevel(s string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, err
	}

	return level, nil
}
