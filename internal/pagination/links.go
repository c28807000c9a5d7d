package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

// BuildLinks returns the previous and next page URLs, nil when there is no
// such page. Filters come first in request order, then limit, then offset.
// An offset that would be zero is left out of the previous link. The next
// check never computes offset+limit, which may exceed the int range.
func BuildLinks(baseURL string, where Conjunction, page PageRequest, count int) (previous, next *string) {
	if page.Offset > 0 {
		prev := page.Offset - page.Limit
		s := link(baseURL, where, page.Limit, prev, prev > 0)
		previous = &s
	}
	if page.Offset < count && count-page.Offset > page.Limit {
		s := link(baseURL, where, page.Limit, page.Offset+page.Limit, true)
		next = &s
	}
	return previous, next
}

func link(baseURL string, where Conjunction, limit, offset int, withOffset bool) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString("/?")
	for _, p := range where {
		b.WriteString(url.QueryEscape(p.Param))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.QueryValue()))
		b.WriteByte('&')
	}
	b.WriteString(LimitParam)
	b.WriteByte('=')
	b.WriteString(strconv.Itoa(limit))
	if withOffset {
		b.WriteByte('&')
		b.WriteString(OffsetParam)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(offset))
	}
	return b.String()
}
