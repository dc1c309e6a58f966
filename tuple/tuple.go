// Package tuple provides immutable, fixed-arity, heterogeneous records:
// Tuple2 through Tuple10.
//
// Elements are set once by NewTupleN and read back through positional
// accessors (First, Second, ...) or all at once with Values. Every tuple has
// value semantics:
//
//   - Equals compares element by element with compare.Equal, so slices, maps
//     and types with their own Equals method compare by content.
//   - HashCode is consistent with Equals and sensitive to element position.
//   - String renders "(v1, v2, ...)".
//
// Tuples are plain structs, so when every element type is comparable they
// can also be compared with == and used directly as Go map keys.
//
// The types are generated from one template by internal/tuplegen; edit the
// template, not tuple_gen.go.
package tuple

//go:generate go run ../cmd/tuplegen --out tuple_gen.go --package tuple --min 2 --max 10

import (
	"encoding/json"
	"fmt"
	"hash"
	"strings"

	"github.com/amp-labs/amp-generics/compare"
	"github.com/amp-labs/amp-generics/errors"
	"github.com/amp-labs/amp-generics/hashing"
	"gopkg.in/yaml.v3"
)

var (
	_ compare.Comparable[Tuple2[int, string]] = Tuple2[int, string]{}
	_ hashing.HashCoder                       = Tuple2[int, string]{}
	_ hashing.Hashable                        = Tuple2[int, string]{}
	_ fmt.Stringer                            = Tuple2[int, string]{}
	_ json.Marshaler                          = Tuple2[int, string]{}
	_ json.Unmarshaler                        = (*Tuple2[int, string])(nil)
	_ yaml.Marshaler                          = Tuple10[int, int, int, int, int, int, int, int, int, int]{}
	_ yaml.Unmarshaler                        = (*Tuple10[int, int, int, int, int, int, int, int, int, int])(nil)
)

func format(values ...any) string {
	var sb strings.Builder

	sb.WriteByte('(')

	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprint(&sb, v)
	}

	sb.WriteByte(')')

	return sb.String()
}

func updateHash(h hash.Hash, values ...any) error {
	for _, v := range values {
		if err := hashing.Write(h, v); err != nil {
			return err
		}
	}

	return nil
}

func marshalJSON(values ...any) ([]byte, error) {
	return json.Marshal(values)
}

func unmarshalJSON(data []byte, targets ...any) error {
	var raw []json.RawMessage

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw) != len(targets) {
		return fmt.Errorf("%w: expected %d, got %d", errors.ErrArity, len(targets), len(raw))
	}

	var errs errors.Collection

	for i, msg := range raw {
		errs.Addf(json.Unmarshal(msg, targets[i]), "element %d", i)
	}

	return errs.GetError()
}

func marshalYAML(values ...any) (any, error) {
	return values, nil
}

func unmarshalYAML(node *yaml.Node, targets ...any) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: expected a YAML sequence at line %d", errors.ErrWrongType, node.Line)
	}

	if len(node.Content) != len(targets) {
		return fmt.Errorf("%w: expected %d, got %d", errors.ErrArity, len(targets), len(node.Content))
	}

	var errs errors.Collection

	for i, child := range node.Content {
		errs.Addf(child.Decode(targets[i]), "element %d", i)
	}

	return errs.GetError()
}
