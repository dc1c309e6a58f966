package tuplegen

import (
	"strings"
	"text/template"
)

var funcs = template.FuncMap{ //nolint:gochecknoglobals
	"fields": func(prefix string, slots []slot) string {
		parts := make([]string, len(slots))
		for i, s := range slots {
			parts[i] = prefix + s.Field
		}

		return strings.Join(parts, ", ")
	},
}

var fileTemplate = template.Must(template.New("tuple").Funcs(funcs).Parse(`// Code generated by tuplegen. DO NOT EDIT.

package {{.Package}}

import (
	"hash"

	"github.com/amp-labs/amp-generics/compare"
	"github.com/amp-labs/amp-generics/hashing"
	"gopkg.in/yaml.v3"
)
{{range .Arities}}{{$t := printf "%s[%s]" .Name .TypeParams}}
// New{{.Name}} creates a {{.Name}} holding the given values.
func New{{.Name}}[{{.TypeParams}} any]({{range $i, $s := .Slots}}{{if $i}}, {{end}}{{$s.Field}} {{$s.Type}}{{end}}) {{$t}} {
	return {{$t}}{
{{- range .Slots}}
		{{.Field}}: {{.Field}},
{{- end}}
	}
}

// {{.Name}} is an immutable {{.Noun}} of values.
type {{.Name}}[{{.TypeParams}} any] struct {
{{- range .Slots}}
	{{.Field}} {{.Type}}
{{- end}}
}
{{range .Slots}}
func (t {{$t}}) {{.Method}}() {{.Type}} { //nolint:ireturn
	return t.{{.Field}}
}
{{end}}
// Values returns every element of the tuple, in order.
func (t {{$t}}) Values() ({{.TypeParams}}) { //nolint:ireturn
	return {{fields "t." .Slots}}
}

// Len returns the arity of the tuple.
func (t {{$t}}) Len() int {
	return {{.N}}
}

// Equals reports whether every element of t equals the corresponding element
// of other. Elements are compared left to right with compare.Equal, stopping
// at the first mismatch.
func (t {{$t}}) Equals(other {{$t}}) bool {
	return {{range $i, $s := .Slots}}{{if $i}} &&
		{{end}}compare.Equal(t.{{$s.Field}}, other.{{$s.Field}}){{end}}
}

// EqualsAny is Equals for an untyped argument. It returns false, rather than
// failing, when other is not a {{$t}} or a non-nil pointer to one.
func (t {{$t}}) EqualsAny(other any) bool {
	switch o := other.(type) {
	case {{$t}}:
		return t.Equals(o)
	case *{{$t}}:
		return o != nil && t.Equals(*o)
	default:
		return false
	}
}

// HashCode combines the element hash codes, rotating each by its position.
func (t {{$t}}) HashCode() uint32 {
	return {{range $i, $s := .Slots}}{{if $i}} ^
		hashing.Rotate(hashing.Of(t.{{$s.Field}}), {{$s.Index}}){{else}}hashing.Of(t.{{$s.Field}}){{end}}{{end}}
}

// String renders the tuple as "({{range $i, $s := .Slots}}{{if $i}}, {{end}}{{$s.Field}}{{end}})".
func (t {{$t}}) String() string {
	return format({{fields "t." .Slots}})
}

// UpdateHash implements hashing.Hashable.
func (t {{$t}}) UpdateHash(h hash.Hash) error {
	return updateHash(h, {{fields "t." .Slots}})
}

// MarshalJSON encodes the tuple as a JSON array of {{.N}} elements.
func (t {{$t}}) MarshalJSON() ([]byte, error) {
	return marshalJSON({{fields "t." .Slots}})
}

// UnmarshalJSON decodes a JSON array of exactly {{.N}} elements. The receiver is
// left untouched if decoding fails.
func (t *{{$t}}) UnmarshalJSON(data []byte) error {
	var out {{$t}}

	if err := unmarshalJSON(data, {{fields "&out." .Slots}}); err != nil {
		return err
	}

	*t = out

	return nil
}

// MarshalYAML encodes the tuple as a YAML sequence of {{.N}} elements.
func (t {{$t}}) MarshalYAML() (any, error) {
	return marshalYAML({{fields "t." .Slots}})
}

// UnmarshalYAML decodes a YAML sequence of exactly {{.N}} elements. The receiver
// is left untouched if decoding fails.
func (t *{{$t}}) UnmarshalYAML(node *yaml.Node) error {
	var out {{$t}}

	if err := unmarshalYAML(node, {{fields "&out." .Slots}}); err != nil {
		return err
	}

	*t = out

	return nil
}
{{end}}`))
