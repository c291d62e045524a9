package httpx

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/minegocio/pos-web/internal/domain/model"
)

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// PaginationData contains pagination information for list views.
type PaginationData struct {
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
	BasePath   string
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	data := map[string]any{
		"Title":       meta.Title,
		"PageTitle":   meta.PageTitle,
		"CurrentPage": meta.CurrentPage,
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		data["IsAuthenticated"] = true
		data["Username"] = session.Claims.Username
		data["IsAdmin"] = session.IsAdmin()
	}

	return data
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
	r    *http.Request
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{
		data: basePageData(r, meta),
		r:    r,
	}
}

// WithPagination adds pagination data and builds PrevURL/NextURL, preserving
// the request's filter parameters across page moves.
func (b *TemplateDataBuilder) WithPagination(opts PaginationData) *TemplateDataBuilder {
	b.data["Page"] = opts.Page
	b.data["PageSize"] = opts.PageSize
	b.data["TotalItems"] = opts.TotalItems
	b.data["TotalPages"] = opts.TotalPages
	b.data["HasPrev"] = opts.Page > 1
	b.data["HasNext"] = opts.Page < opts.TotalPages

	if opts.Page > 1 {
		b.data["PrevURL"] = buildPageURL(opts.BasePath, b.r.URL.Query(), opts.Page-1)
	}
	if opts.Page < opts.TotalPages {
		b.data["NextURL"] = buildPageURL(opts.BasePath, b.r.URL.Query(), opts.Page+1)
	}

	return b
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// WithFlash sets a one-off success message.
func (b *TemplateDataBuilder) WithFlash(msg string) *TemplateDataBuilder {
	if msg != "" {
		b.data["Flash"] = msg
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}

// buildPageURL rewrites the query string for a different page, keeping every
// other parameter (the filters) intact.
func buildPageURL(basePath string, query url.Values, page int) string {
	q := url.Values{}
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("page", strconv.Itoa(page))
	return basePath + "?" + q.Encode()
}

// paginationFor derives view pagination from a server page result.
func paginationFor(res model.PageResult[map[string]any], q model.PageQuery, basePath string) PaginationData {
	return PaginationData{
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalItems: res.Count,
		TotalPages: model.TotalPages(res.Count, q.PageSize),
		BasePath:   basePath,
	}
}
