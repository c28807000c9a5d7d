package gormdb

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"offsetpager/internal/domain/person"
	"offsetpager/internal/pagination"
)

// maxPrealloc bounds the result buffer; limits are client input and may be huge
// when no maximum page size is configured.
const maxPrealloc = 64

// ModelSource serves a gorm model as a pagination.Source. String predicates
// compare with BINARY so the column collation cannot make them
// case- or accent-insensitive.
type ModelSource[T any] struct {
	db     *gorm.DB
	schema *pagination.Schema[T]
	order  string
}

func NewModelSource[T any](db *gorm.DB, schema *pagination.Schema[T], order string) *ModelSource[T] {
	return &ModelSource[T]{db: db, schema: schema, order: order}
}

func NewPersonSource(db *gorm.DB) *ModelSource[person.Person] {
	return NewModelSource(db, person.Schema, "id ASC")
}

func (s *ModelSource[T]) Schema() *pagination.Schema[T] { return s.schema }

func (s *ModelSource[T]) Count(ctx context.Context, where pagination.Conjunction) (int, error) {
	var n int64
	if err := s.scope(ctx, where).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return int(n), nil
}

func (s *ModelSource[T]) Slice(ctx context.Context, where pagination.Conjunction, page pagination.PageRequest) ([]T, error) {
	out := make([]T, 0, min(page.Limit, maxPrealloc))
	err := s.scope(ctx, where).
		Order(s.order).
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	return out, nil
}

func (s *ModelSource[T]) scope(ctx context.Context, where pagination.Conjunction) *gorm.DB {
	q := s.db.WithContext(ctx).Model(new(T))
	for _, p := range where {
		column, kind, ok := s.schema.Lookup(p.Field)
		if !ok {
			continue
		}
		col := clause.Column{Name: column}
		if kind == pagination.KindString {
			q = q.Where(clause.Expr{SQL: "? = BINARY ?", Vars: []any{col, p.Value()}})
			continue
		}
		q = q.Where(clause.Eq{Column: col, Value: p.Value()})
	}
	return q
}
