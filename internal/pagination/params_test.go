package pagination_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offsetpager/internal/pagination"
)

func TestNew_ValidatesConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   pagination.Config
		field string
	}{
		{name: "zero default", cfg: pagination.Config{DefaultPageSize: 0}, field: "DefaultPageSize"},
		{name: "negative default", cfg: pagination.Config{DefaultPageSize: -1, MaxPageSize: 10}, field: "DefaultPageSize"},
		{name: "negative max", cfg: pagination.Config{DefaultPageSize: 10, MaxPageSize: -1}, field: "MaxPageSize"},
		{name: "max below default", cfg: pagination.Config{DefaultPageSize: 10, MaxPageSize: 5}, field: "MaxPageSize"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := pagination.New(tt.cfg)
			assert.Nil(t, p)
			var cfgErr *pagination.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}

	t.Run("valid", func(t *testing.T) {
		for _, cfg := range []pagination.Config{
			{DefaultPageSize: 10},
			{DefaultPageSize: 10, MaxPageSize: 10},
			{DefaultPageSize: 10, MaxPageSize: 25},
		} {
			p, err := pagination.New(cfg)
			require.NoError(t, err)
			assert.NotNil(t, p)
		}
	})
}

func TestInterpret(t *testing.T) {
	tests := []struct {
		name       string
		cfg        pagination.Config
		query      string
		page       pagination.PageRequest
		candidates []pagination.Candidate
	}{
		{
			name:  "defaults",
			cfg:   pagination.Config{DefaultPageSize: 10, MaxPageSize: 25},
			query: "",
			page:  pagination.PageRequest{Limit: 10, Offset: 0},
		},
		{
			name:  "explicit values",
			cfg:   pagination.Config{DefaultPageSize: 10, MaxPageSize: 25},
			query: "limit=5&offset=15",
			page:  pagination.PageRequest{Limit: 5, Offset: 15},
		},
		{
			name:  "clamped to maximum",
			cfg:   pagination.Config{DefaultPageSize: 10, MaxPageSize: 25},
			query: "limit=1000",
			page:  pagination.PageRequest{Limit: 25},
		},
		{
			name:  "no maximum leaves limit unclamped",
			cfg:   pagination.Config{DefaultPageSize: 10},
			query: "limit=1000",
			page:  pagination.PageRequest{Limit: 1000},
		},
		{
			name:  "maximum equal to default",
			cfg:   pagination.Config{DefaultPageSize: 10, MaxPageSize: 10},
			query: "limit=11",
			page:  pagination.PageRequest{Limit: 10},
		},
		{
			name:  "malformed values degrade",
			cfg:   pagination.Config{DefaultPageSize: 10, MaxPageSize: 25},
			query: "limit=aladdin&offset=jafar",
			page:  pagination.PageRequest{Limit: 10},
		},
		{
			name:  "non-positive limit and negative offset degrade",
			cfg:   pagination.Config{DefaultPageSize: 10, MaxPageSize: 25},
			query: "limit=0&offset=-4",
			page:  pagination.PageRequest{Limit: 10},
		},
		{
			name:  "negative limit degrades",
			cfg:   pagination.Config{DefaultPageSize: 10, MaxPageSize: 25},
			query: "limit=-3",
			page:  pagination.PageRequest{Limit: 10},
		},
		{
			name:  "other keys become candidates in order",
			cfg:   pagination.Config{DefaultPageSize: 10},
			query: "robot=true&limit=3&Offset=2&greetings=Hola",
			page:  pagination.PageRequest{Limit: 3},
			candidates: []pagination.Candidate{
				{Key: "robot", Raw: "true"},
				{Key: "Offset", Raw: "2"},
				{Key: "greetings", Raw: "Hola"},
			},
		},
		{
			name:  "other spelling of limit does not override it",
			cfg:   pagination.Config{DefaultPageSize: 10, MaxPageSize: 25},
			query: "limit=10&Limit=3",
			page:  pagination.PageRequest{Limit: 10},
			candidates: []pagination.Candidate{
				{Key: "Limit", Raw: "3"},
			},
		},
		{
			name:  "huge limit without maximum",
			cfg:   pagination.Config{DefaultPageSize: 10},
			query: "limit=" + strconv.Itoa(math.MaxInt) + "&offset=" + strconv.Itoa(math.MaxInt),
			page:  pagination.PageRequest{Limit: math.MaxInt, Offset: math.MaxInt},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := pagination.New(tt.cfg)
			require.NoError(t, err)
			page, candidates := p.Interpret(pagination.ParseQuery(tt.query))
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.candidates, candidates)
		})
	}
}
