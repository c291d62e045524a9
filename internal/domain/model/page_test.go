package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, pageSize, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{5, 0, 1}, // degenerate page size
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.pageSize), "count=%d size=%d", tt.count, tt.pageSize)
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, totalPages, want int
	}{
		{0, 5, 1},
		{-3, 5, 1},
		{1, 5, 1},
		{5, 5, 5},
		{6, 5, 5},
		{100, 1, 1},
		{2, 0, 1}, // empty collection still has page 1
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPage(tt.page, tt.totalPages), "page=%d total=%d", tt.page, tt.totalPages)
	}
}

func TestPageQuery_Normalized(t *testing.T) {
	q := PageQuery{Page: -2, Filters: map[string]string{"name": "cafe", "category": ""}}
	n := q.Normalized()

	assert.Equal(t, 1, n.Page)
	assert.Equal(t, DefaultPageSize, n.PageSize)
	assert.Equal(t, map[string]string{"name": "cafe"}, n.Filters)
}

func TestPageQuery_WithFilters_ResetsPage(t *testing.T) {
	q := PageQuery{Page: 4, PageSize: 10}
	next := q.WithFilters(map[string]string{"name": "te"})

	assert.Equal(t, 1, next.Page)
	assert.Equal(t, "te", next.Filters["name"])
	assert.Equal(t, 4, q.Page, "original query untouched")
}

func TestPageQuery_FiltersEqual(t *testing.T) {
	a := PageQuery{Filters: map[string]string{"name": "x"}}
	b := PageQuery{Filters: map[string]string{"name": "x"}}
	c := PageQuery{Filters: map[string]string{"name": "y"}}

	assert.True(t, a.FiltersEqual(b))
	assert.False(t, a.FiltersEqual(c))
	assert.False(t, a.FiltersEqual(PageQuery{}))
}
