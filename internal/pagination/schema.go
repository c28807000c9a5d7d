package pagination

import (
	"fmt"
	"strings"

	"offsetpager/internal/logging"
)

type field[T any] struct {
	name   string
	column string
	kind   Kind

	str  func(T) string
	num  func(T) int64
	flag func(T) bool
}

// Schema is the filterable field registry of a record type. Build it once at
// startup and share it; it is read-only after registration.
type Schema[T any] struct {
	fields map[string]*field[T]
	order  []string
}

func NewSchema[T any]() *Schema[T] {
	return &Schema[T]{fields: make(map[string]*field[T])}
}

// String registers a text field compared verbatim.
func (s *Schema[T]) String(name, column string, get func(T) string) *Schema[T] {
	return s.add(&field[T]{name: name, column: column, kind: KindString, str: get})
}

// Int registers a base-10 integer field.
func (s *Schema[T]) Int(name, column string, get func(T) int64) *Schema[T] {
	return s.add(&field[T]{name: name, column: column, kind: KindInt, num: get})
}

// Bool registers a true/false field.
func (s *Schema[T]) Bool(name, column string, get func(T) bool) *Schema[T] {
	return s.add(&field[T]{name: name, column: column, kind: KindBool, flag: get})
}

func (s *Schema[T]) add(f *field[T]) *Schema[T] {
	key := strings.ToLower(f.name)
	if _, dup := s.fields[key]; dup {
		panic(fmt.Sprintf("pagination: field %q registered twice", f.name))
	}
	if f.column == "" {
		f.column = key
	}
	s.fields[key] = f
	s.order = append(s.order, f.name)
	return s
}

// Fields lists registered field names in registration order.
func (s *Schema[T]) Fields() []string {
	return append([]string(nil), s.order...)
}

// Lookup resolves a field by case-insensitive name. SQL-backed sources use it
// to map a predicate's Field onto its storage column.
func (s *Schema[T]) Lookup(name string) (column string, kind Kind, ok bool) {
	f, ok := s.fields[strings.ToLower(name)]
	if !ok {
		return "", 0, false
	}
	return f.column, f.kind, true
}

// Build turns candidates into a conjunction. Unknown keys and values that do
// not coerce to the field type are dropped one by one; the rest still apply.
func (s *Schema[T]) Build(candidates []Candidate) Conjunction {
	logger := logging.NewLogger("pagination")
	where := make(Conjunction, 0, len(candidates))
	for _, c := range candidates {
		f, ok := s.fields[strings.ToLower(c.Key)]
		if !ok {
			logger.Debug().Str("param", c.Key).Msg("no such field, filter ignored")
			continue
		}
		p, ok := coerce(f.kind, c.Raw)
		if !ok {
			logger.Debug().Str("param", c.Key).Str("kind", f.kind.String()).Msg("value does not coerce, filter ignored")
			continue
		}
		p.Param = c.Key
		p.Field = f.name
		where = append(where, p)
	}
	return where
}

// Matches evaluates where against rec in memory.
func (s *Schema[T]) Matches(rec T, where Conjunction) bool {
	for _, p := range where {
		f, ok := s.fields[strings.ToLower(p.Field)]
		if !ok {
			return false
		}
		switch f.kind {
		case KindString:
			if f.str(rec) != p.Str {
				return false
			}
		case KindInt:
			if f.num(rec) != p.Int {
				return false
			}
		case KindBool:
			if f.flag(rec) != p.Bool {
				return false
			}
		}
	}
	return true
}
