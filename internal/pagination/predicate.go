package pagination

import (
	"strconv"
	"strings"
)

// Kind is the semantic type of a filterable field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	}
	return "unknown"
}

// Predicate is one equality check. Exactly one of Str, Int or Bool is
// meaningful, selected by Kind.
type Predicate struct {
	Param string // request key as the client spelled it
	Field string // registered field name
	Kind  Kind
	Raw   string

	Str  string
	Int  int64
	Bool bool
}

// Value returns the typed comparison value.
func (p Predicate) Value() any {
	switch p.Kind {
	case KindInt:
		return p.Int
	case KindBool:
		return p.Bool
	default:
		return p.Str
	}
}

// QueryValue renders the value for a navigation link. Booleans use the
// capitalised True/False literal; other kinds echo the raw request text.
func (p Predicate) QueryValue() string {
	if p.Kind == KindBool {
		if p.Bool {
			return "True"
		}
		return "False"
	}
	return p.Raw
}

// Conjunction ANDs predicates together. Empty means match everything.
type Conjunction []Predicate

// coerce converts raw into a predicate for kind, reporting false when the
// text does not parse.
func coerce(kind Kind, raw string) (Predicate, bool) {
	p := Predicate{Kind: kind, Raw: raw}
	switch kind {
	case KindString:
		p.Str = raw
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return p, false
		}
		p.Int = n
	case KindBool:
		switch strings.ToLower(raw) {
		case "true":
			p.Bool = true
		case "false":
			p.Bool = false
		default:
			return p, false
		}
	default:
		return p, false
	}
	return p, true
}
