package pagination

import (
	"context"
	"sync"

	"github.com/minegocio/pos-web/internal/domain/model"
)

// FetchFunc retrieves one page of a remote collection.
type FetchFunc[T any] func(ctx context.Context, q model.PageQuery) (model.PageResult[T], error)

// ServerPager pages a remote collection, issuing one fetch per distinct
// (page, filters) pair. When state changes while a fetch is in flight, the
// stale response is discarded: every fetch carries a generation number and
// only the result of the latest-issued fetch is applied.
//
// A 401 from the backend is surfaced through Err like any other failure; the
// session layer above decides whether it ends the session.
type ServerPager[T any] struct {
	fetch FetchFunc[T]

	mu         sync.Mutex
	gen        uint64
	query      model.PageQuery
	items      []T
	totalItems int
	// counted is set once a fetch has reported an authoritative total; until
	// then the page range is unknown and requested pages are trusted as-is.
	counted bool
	loading bool
	err     error
}

// NewServerPager builds a pager that fetches with fetch, starting at page 1
// with the given initial filters. No fetch is issued until Refetch or a
// navigation call.
func NewServerPager[T any](fetch FetchFunc[T], pageSize int, initialFilters map[string]string) *ServerPager[T] {
	return &ServerPager[T]{
		fetch: fetch,
		query: model.PageQuery{Page: 1, PageSize: pageSize, Filters: initialFilters}.Normalized(),
	}
}

// Snapshot is an immutable view of the pager state.
type Snapshot[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
	Loading    bool
	Err        error
}

// State returns the current pager state.
func (p *ServerPager[T]) State() Snapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// GoToPage moves to the requested page and re-fetches. Filters are untouched.
// The page is clamped to the known page range; before any fetch has reported
// a total there is no range to clamp against, so the requested page goes to
// the backend as-is and an overshoot is corrected once the count comes back.
func (p *ServerPager[T]) GoToPage(ctx context.Context, page int) Snapshot[T] {
	p.mu.Lock()
	if p.counted {
		page = model.ClampPage(page, model.TotalPages(p.totalItems, p.query.PageSize))
	} else if page < 1 {
		page = 1
	}
	p.query.Page = page
	p.mu.Unlock()

	snap := p.Refetch(ctx)
	if snap.Err == nil && snap.TotalPages > 0 && snap.Page > snap.TotalPages {
		return p.GoToPage(ctx, snap.TotalPages)
	}
	return snap
}

// SetFilters replaces the filter state, resets to page 1, and re-fetches.
func (p *ServerPager[T]) SetFilters(ctx context.Context, filters map[string]string) Snapshot[T] {
	p.mu.Lock()
	p.query = p.query.WithFilters(filters).Normalized()
	p.mu.Unlock()
	return p.Refetch(ctx)
}

// Refetch re-issues the fetch for the current (page, filters) without
// resetting either. Used after a mutating operation elsewhere on the page to
// resynchronize the list.
func (p *ServerPager[T]) Refetch(ctx context.Context) Snapshot[T] {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	q := p.query
	p.loading = true
	p.err = nil
	p.mu.Unlock()

	res, err := p.fetch(ctx, q)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		// A newer fetch was issued while this one was in flight; its result is
		// authoritative, ours is stale.
		return p.snapshotLocked()
	}
	p.loading = false
	if err != nil {
		p.err = err
		return p.snapshotLocked()
	}
	p.items = res.Results
	p.totalItems = res.Count
	p.counted = true
	return p.snapshotLocked()
}

func (p *ServerPager[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{
		Items:      p.items,
		Page:       p.query.Page,
		PageSize:   p.query.PageSize,
		TotalItems: p.totalItems,
		TotalPages: model.TotalPages(p.totalItems, p.query.PageSize),
		Loading:    p.loading,
		Err:        p.err,
	}
}
