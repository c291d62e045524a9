package pagination

// Package pagination provides the two list-paging helpers the UI screens are
// built from: an in-memory pager over a full collection and a server-backed
// pager that fetches one page at a time from the remote API.

import (
	"github.com/minegocio/pos-web/internal/domain/model"
)

// FilterFunc narrows a full collection to the rows matching the filter state.
// It recomputes from the full source on every filter change; collections are
// assumed small enough to hold in memory client-side.
type FilterFunc[T, F any] func(items []T, filters F) []T

// Pager pages a filtered view of an in-memory collection. Filtering never
// mutates the source slice; the current page is a pure sub-slice of the
// filtered result. Pager is not safe for concurrent use.
type Pager[T, F any] struct {
	items          []T
	pageSize       int
	filter         FilterFunc[T, F]
	filters        F
	initialFilters F
	page           int
	filtered       []T
}

// NewPager builds a pager over items with the given filter logic and initial
// filter state.
func NewPager[T, F any](items []T, pageSize int, filter FilterFunc[T, F], initial F) *Pager[T, F] {
	if pageSize < 1 {
		pageSize = model.DefaultPageSize
	}
	p := &Pager[T, F]{
		items:          items,
		pageSize:       pageSize,
		filter:         filter,
		filters:        initial,
		initialFilters: initial,
		page:           1,
	}
	p.refilter()
	return p
}

// SetItems replaces the source collection, keeping filters and re-clamping the
// current page against the new filtered size.
func (p *Pager[T, F]) SetItems(items []T) {
	p.items = items
	p.refilter()
	p.page = model.ClampPage(p.page, p.TotalPages())
}

// SetFilters replaces the filter state and resets to page 1.
func (p *Pager[T, F]) SetFilters(filters F) {
	p.filters = filters
	p.refilter()
	p.page = 1
}

// ResetFilters restores the initial filter state and resets to page 1.
func (p *Pager[T, F]) ResetFilters() {
	p.SetFilters(p.initialFilters)
}

// Filters returns the current filter state.
func (p *Pager[T, F]) Filters() F { return p.filters }

// GoToPage moves to the requested page, silently clamped to
// [1, max(1, totalPages)].
func (p *Pager[T, F]) GoToPage(page int) {
	p.page = model.ClampPage(page, p.TotalPages())
}

// Page returns the current page's slice of the filtered collection.
func (p *Pager[T, F]) Page() []T {
	start := (p.page - 1) * p.pageSize
	if start >= len(p.filtered) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.filtered) {
		end = len(p.filtered)
	}
	return p.filtered[start:end]
}

// CurrentPage returns the current page number (always ≥ 1).
func (p *Pager[T, F]) CurrentPage() int { return p.page }

// TotalPages returns the page count of the filtered collection, never below 1.
func (p *Pager[T, F]) TotalPages() int {
	return model.TotalPages(len(p.filtered), p.pageSize)
}

// TotalItems returns the filtered row count.
func (p *Pager[T, F]) TotalItems() int { return len(p.filtered) }

// PageSize returns the configured page size.
func (p *Pager[T, F]) PageSize() int { return p.pageSize }

func (p *Pager[T, F]) refilter() {
	if p.filter == nil {
		p.filtered = p.items
		return
	}
	p.filtered = p.filter(p.items, p.filters)
}
