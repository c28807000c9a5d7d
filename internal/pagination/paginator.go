package pagination

import (
	"context"

	"golang.org/x/sync/errgroup"

	"offsetpager/internal/logging"
)

// Result is one page of a filtered listing.
type Result[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Paginator applies limit/offset paging with dynamic equality filters.
// It holds no per-request state and is safe for concurrent use.
type Paginator struct {
	cfg Config
}

func New(cfg Config) (*Paginator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Paginator{cfg: cfg}, nil
}

// Paginate builds one page of src for the given request parameters. Source
// errors are returned as-is.
func Paginate[T any](ctx context.Context, p *Paginator, src Source[T], baseURL string, params Params) (*Result[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, candidates := p.Interpret(params)
	where := src.Schema().Build(candidates)

	count, items, err := slice(ctx, src, where, page)
	if err != nil {
		return nil, err
	}

	previous, next := BuildLinks(baseURL, where, page, count)
	if items == nil {
		items = make([]T, 0)
	}

	logger := logging.NewLogger("pagination")
	logger.Debug().
		Int("limit", page.Limit).
		Int("offset", page.Offset).
		Int("filters", len(where)).
		Int("dropped", len(candidates)-len(where)).
		Int("count", count).
		Int("results", len(items)).
		Msg("page built")

	return &Result[T]{
		Count:    count,
		Next:     next,
		Previous: previous,
		Results:  items,
	}, nil
}

// PaginateMap is Paginate followed by Map.
func PaginateMap[T, U any](ctx context.Context, p *Paginator, src Source[T], baseURL string, params Params, fn func(T) U) (*Result[U], error) {
	res, err := Paginate(ctx, p, src, baseURL, params)
	if err != nil {
		return nil, err
	}
	return Map(res, fn), nil
}

// Map converts every record of a page, keeping order, count and links.
func Map[T, U any](res *Result[T], fn func(T) U) *Result[U] {
	out := make([]U, len(res.Results))
	for i, rec := range res.Results {
		out[i] = fn(rec)
	}
	return &Result[U]{
		Count:    res.Count,
		Next:     res.Next,
		Previous: res.Previous,
		Results:  out,
	}
}

// slice runs Count and Slice concurrently. The first failure cancels the
// other read. The two reads are not atomic against a mutating source.
func slice[T any](ctx context.Context, src Source[T], where Conjunction, page PageRequest) (int, []T, error) {
	var (
		count int
		items []T
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := src.Count(gctx, where)
		count = n
		return err
	})
	g.Go(func() error {
		recs, err := src.Slice(gctx, where, page)
		items = recs
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	if len(items) > page.Limit {
		items = items[:page.Limit]
	}
	return count, items, nil
}
