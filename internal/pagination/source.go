package pagination

import "context"

// Source is an ordered, filterable record collection. Implementations must
// keep a stable order between Count and Slice calls and must not reorder it.
type Source[T any] interface {
	Schema() *Schema[T]
	Count(ctx context.Context, where Conjunction) (int, error)
	Slice(ctx context.Context, where Conjunction, page PageRequest) ([]T, error)
}

// MemorySource serves records from a slice kept in the order given.
type MemorySource[T any] struct {
	schema  *Schema[T]
	records []T
}

func NewMemorySource[T any](schema *Schema[T], records []T) *MemorySource[T] {
	return &MemorySource[T]{schema: schema, records: records}
}

func (m *MemorySource[T]) Schema() *Schema[T] { return m.schema }

func (m *MemorySource[T]) Count(ctx context.Context, where Conjunction) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n := 0
	for _, rec := range m.records {
		if m.schema.Matches(rec, where) {
			n++
		}
	}
	return n, nil
}

func (m *MemorySource[T]) Slice(ctx context.Context, where Conjunction, page PageRequest) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]T, 0, min(page.Limit, len(m.records)))
	skipped := 0
	for _, rec := range m.records {
		if len(out) == page.Limit {
			break
		}
		if !m.schema.Matches(rec, where) {
			continue
		}
		if skipped < page.Offset {
			skipped++
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
