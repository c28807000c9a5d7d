package pagination

import (
	"net/url"
	"strings"
)

// Params is the read-only view of request query parameters the engine needs.
// Lookups are case-insensitive; Keys preserves the order keys first appeared in.
// Implementations must not fold other spellings into the reserved limit/offset keys.
type Params interface {
	Get(key string) (string, bool)
	Keys() []string
}

type queryEntry struct {
	key   string
	value string
}

// Query is an ordered, case-insensitive parameter set. The zero value is empty.
// The reserved keys limit and offset are only folded with their exact
// lowercase spelling, so "Limit" never overwrites "limit".
type Query struct {
	entries []queryEntry
	index   map[string]int
}

// Set stores value under key. A key that matches an existing one case-insensitively
// keeps its first spelling and position; the value is replaced (last wins).
func (q *Query) Set(key, value string) {
	if q.index == nil {
		q.index = make(map[string]int)
	}
	lk := indexKey(key)
	if i, ok := q.index[lk]; ok {
		q.entries[i].value = value
		return
	}
	q.index[lk] = len(q.entries)
	q.entries = append(q.entries, queryEntry{key: key, value: value})
}

func (q Query) Get(key string) (string, bool) {
	i, ok := q.index[indexKey(key)]
	if !ok {
		return "", false
	}
	return q.entries[i].value, true
}

func (q Query) Keys() []string {
	keys := make([]string, len(q.entries))
	for i, e := range q.entries {
		keys[i] = e.key
	}
	return keys
}

func indexKey(key string) string {
	if key == LimitParam || key == OffsetParam {
		return "\x00" + key
	}
	return strings.ToLower(key)
}

// ParseQuery decodes a raw query string ("a=1&b=2") keeping key order.
// Pairs with invalid escapes or an empty key are skipped.
func ParseQuery(raw string) Query {
	var q Query
	raw = strings.TrimPrefix(raw, "?")
	for raw != "" {
		var pair string
		pair, raw, _ = strings.Cut(raw, "&")
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil || key == "" {
			continue
		}
		value, err := url.QueryUnescape(v)
		if err != nil {
			continue
		}
		q.Set(key, value)
	}
	return q
}
