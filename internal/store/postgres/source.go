package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"offsetpager/internal/pagination"
)

// maxPrealloc bounds the result buffer; limits are client input and may be huge
// when no maximum page size is configured.
const maxPrealloc = 64

func newQueryBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Table describes how records of one type are stored.
type Table[T any] struct {
	Name    string
	Columns []string
	OrderBy string
	Scan    func(row pgx.Row) (T, error)
}

// TableSource serves a table as a pagination.Source. Filters become
// column = $n conditions; the page is read with LIMIT/OFFSET in OrderBy order.
type TableSource[T any] struct {
	db     DB
	schema *pagination.Schema[T]
	table  Table[T]
}

func NewTableSource[T any](db DB, schema *pagination.Schema[T], table Table[T]) *TableSource[T] {
	return &TableSource[T]{db: db, schema: schema, table: table}
}

func (s *TableSource[T]) Schema() *pagination.Schema[T] { return s.schema }

func (s *TableSource[T]) Count(ctx context.Context, where pagination.Conjunction) (int, error) {
	query := s.applyWhere(newQueryBuilder().Select("COUNT(*)").From(s.table.Name), where)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count %s: %w", s.table.Name, err)
	}
	var n int64
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.table.Name, err)
	}
	return int(n), nil
}

func (s *TableSource[T]) Slice(ctx context.Context, where pagination.Conjunction, page pagination.PageRequest) ([]T, error) {
	query := s.applyWhere(newQueryBuilder().Select(s.table.Columns...).From(s.table.Name), where).
		OrderBy(s.table.OrderBy).
		Limit(uint64(page.Limit))
	if page.Offset > 0 {
		query = query.Offset(uint64(page.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", s.table.Name, err)
	}
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", s.table.Name, err)
	}
	defer rows.Close()

	out := make([]T, 0, min(page.Limit, maxPrealloc))
	for rows.Next() {
		rec, err := s.table.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table.Name, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.table.Name, err)
	}
	return out, nil
}

func (s *TableSource[T]) applyWhere(q sq.SelectBuilder, where pagination.Conjunction) sq.SelectBuilder {
	for _, p := range where {
		column, _, ok := s.schema.Lookup(p.Field)
		if !ok {
			continue
		}
		q = q.Where(sq.Eq{column: p.Value()})
	}
	return q
}
