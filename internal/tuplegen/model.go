package tuplegen

import (
	"strconv"
	"strings"
	"unicode"
)

var (
	ordinals = [MaxArity]string{ //nolint:gochecknoglobals
		"first", "second", "third", "fourth", "fifth",
		"sixth", "seventh", "eighth", "ninth", "tenth",
	}

	nouns = [MaxArity + 1]string{ //nolint:gochecknoglobals
		2: "pair", 3: "triple", 4: "quadruple", 5: "quintuple",
		6: "sextuple", 7: "septuple", 8: "octuple", 9: "nonuple", 10: "decuple",
	}
)

// slot is one positional element of a generated tuple.
type slot struct {
	Index  int
	Type   string
	Field  string
	Method string
}

// arity is the template model for one tuple type.
type arity struct {
	N          int
	Name       string
	Noun       string
	TypeParams string
	Slots      []slot
}

func newArity(n int) arity {
	slots := make([]slot, n)
	names := make([]string, n)

	for i := range n {
		names[i] = string(rune('A' + i))
		slots[i] = slot{
			Index:  i,
			Type:   names[i],
			Field:  ordinals[i],
			Method: capitalize(ordinals[i]),
		}
	}

	return arity{
		N:          n,
		Name:       "Tuple" + strconv.Itoa(n),
		Noun:       nouns[n],
		TypeParams: strings.Join(names, ", "),
		Slots:      slots,
	}
}

func capitalize(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}
