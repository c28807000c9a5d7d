package pagination

import "strconv"

const (
	// LimitParam and OffsetParam are matched case-sensitively.
	LimitParam  = "limit"
	OffsetParam = "offset"
)

// PageRequest is the interpreted page window. Both fields are never negative.
type PageRequest struct {
	Limit  int
	Offset int
}

// Candidate is a request parameter that may turn into a field filter.
type Candidate struct {
	Key string
	Raw string
}

// Interpret splits params into the page window and filter candidates.
// Malformed limit/offset values fall back to the configured defaults.
func (p *Paginator) Interpret(params Params) (PageRequest, []Candidate) {
	page := PageRequest{Limit: p.cfg.DefaultPageSize}
	var candidates []Candidate

	for _, key := range params.Keys() {
		raw, _ := params.Get(key)
		switch key {
		case LimitParam:
			if n, ok := parseNonNegative(raw); ok && n > 0 {
				page.Limit = n
			}
		case OffsetParam:
			if n, ok := parseNonNegative(raw); ok {
				page.Offset = n
			}
		default:
			candidates = append(candidates, Candidate{Key: key, Raw: raw})
		}
	}

	if p.cfg.MaxPageSize > 0 && page.Limit > p.cfg.MaxPageSize {
		page.Limit = p.cfg.MaxPageSize
	}
	return page, candidates
}

func parseNonNegative(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
