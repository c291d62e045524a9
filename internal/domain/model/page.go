package model

// DefaultPageSize matches the backend's page_size default.
const DefaultPageSize = 10

// PageQuery identifies one page of a filtered listing. Filters with empty
// values are dropped before they reach the wire.
type PageQuery struct {
	Page     int
	PageSize int
	Filters  map[string]string
}

// Normalized returns a copy with the page floored at 1, the page size
// defaulted, and empty filter values removed.
func (q PageQuery) Normalized() PageQuery {
	out := q
	if out.Page < 1 {
		out.Page = 1
	}
	if out.PageSize < 1 {
		out.PageSize = DefaultPageSize
	}
	if len(q.Filters) > 0 {
		out.Filters = make(map[string]string, len(q.Filters))
		for k, v := range q.Filters {
			if v != "" {
				out.Filters[k] = v
			}
		}
	}
	return out
}

// WithFilters returns a copy with new filters and the page reset to 1.
// Changing filters always restarts from the first page.
func (q PageQuery) WithFilters(filters map[string]string) PageQuery {
	out := q
	out.Filters = filters
	out.Page = 1
	return out
}

// FiltersEqual reports whether both queries carry the same filter values.
func (q PageQuery) FiltersEqual(other PageQuery) bool {
	if len(q.Filters) != len(other.Filters) {
		return false
	}
	for k, v := range q.Filters {
		if other.Filters[k] != v {
			return false
		}
	}
	return true
}

// PageResult is the backend's paginated envelope: a total count plus one page
// of results.
type PageResult[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// TotalPages returns the page count for a collection, never less than 1 so a
// list with no rows still has a valid current page.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage bounds page to [1, totalPages]. Out-of-range requests are clamped
// silently, never rejected.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
