package httpx

import (
	"context"
	"net/http"
	"strconv"

	"github.com/minegocio/pos-web/internal/domain/model"
	apperrors "github.com/minegocio/pos-web/internal/errors"
	"github.com/minegocio/pos-web/internal/pagination"
)

// listState is one fetched page of a resource plus everything the list
// template needs to re-render it.
type listState struct {
	schema  resourceSchema
	rows    []map[string]any
	filters map[string]string
	pages   PaginationData
}

// fetchList loads the requested page of a resource. The page and filters come
// from the query string so list URLs are shareable.
func (h *Handlers) fetchList(r *http.Request, resource string) (listState, error) {
	schema, ok := resourceSchemas[resource]
	if !ok {
		return listState{}, apperrors.NotFoundf("Unknown resource %q.", resource)
	}

	sess := GetSessionFromContext(r.Context())
	filters := make(map[string]string, len(schema.Filters))
	for _, f := range schema.Filters {
		filters[f] = r.URL.Query().Get(f)
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	pager := pagination.NewServerPager(
		func(ctx context.Context, q model.PageQuery) (model.PageResult[map[string]any], error) {
			return h.Resources.ListPage(ctx, sess.AccessToken, resource, q)
		},
		model.DefaultPageSize,
		filters,
	)
	snap := pager.GoToPage(r.Context(), page)
	if snap.Err != nil {
		return listState{}, snap.Err
	}

	return listState{
		schema:  schema,
		rows:    snap.Items,
		filters: filters,
		pages: PaginationData{
			Page:       snap.Page,
			PageSize:   snap.PageSize,
			TotalItems: snap.TotalItems,
			TotalPages: snap.TotalPages,
			BasePath:   "/admin/" + resource,
		},
	}, nil
}

// listBuilder assembles the template data for a resource list page. Select
// fields need the bootstrap collections for their options, so the working set
// is loaded alongside the page.
func (h *Handlers) listBuilder(r *http.Request, st listState) *TemplateDataBuilder {
	b := NewTemplateData(r, PageMeta{
		Title:       st.schema.Title,
		PageTitle:   st.schema.Title,
		CurrentPage: "admin-" + st.schema.Slug,
	}).
		WithPagination(st.pages).
		With("Schema", st.schema).
		With("Rows", st.rows).
		With("Filters", st.filters)

	if needsOptions(st.schema) {
		sess := GetSessionFromContext(r.Context())
		if data, err := h.Bootstrap.Load(r.Context(), *sess); err == nil {
			b.With("Categories", data.Categories).
				With("Providers", data.Providers).
				With("Groups", data.Groups)
		}
	}

	return b
}

func needsOptions(schema resourceSchema) bool {
	for _, f := range schema.Fields {
		if f.Kind == fieldSelect {
			return true
		}
	}
	return false
}

// ResourceList renders one page of an admin resource table.
func (h *Handlers) ResourceList(w http.ResponseWriter, r *http.Request) {
	st, err := h.fetchList(r, r.PathValue("resource"))
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}
	h.renderList(w, r, h.listBuilder(r, st))
}

// ResourceCreate adds a row from the list page's form.
func (h *Handlers) ResourceCreate(w http.ResponseWriter, r *http.Request) {
	resource := r.PathValue("resource")
	st, err := h.fetchList(r, resource)
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}
	if st.schema.ReadOnly {
		h.renderFailure(w, r, apperrors.NotFoundf("%s cannot be edited.", st.schema.Title))
		return
	}

	sess := GetSessionFromContext(r.Context())
	body, err := parseResourceBody(r, st.schema)
	if err != nil {
		h.renderPageError(w, r, "resource_list", h.listBuilder(r, st), err)
		return
	}
	if createErr := h.Resources.Create(r.Context(), sess.AccessToken, resource, body); createErr != nil {
		h.renderPageError(w, r, "resource_list", h.listBuilder(r, st), createErr)
		return
	}

	h.Bootstrap.Invalidate(sess.ID)
	http.Redirect(w, r, "/admin/"+resource, http.StatusSeeOther)
}

// ResourceUpdate replaces a row from the list page's inline edit form.
func (h *Handlers) ResourceUpdate(w http.ResponseWriter, r *http.Request) {
	resource := r.PathValue("resource")
	st, err := h.fetchList(r, resource)
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}
	if st.schema.ReadOnly {
		h.renderFailure(w, r, apperrors.NotFoundf("%s cannot be edited.", st.schema.Title))
		return
	}

	id, err := pathInt64(r, "id")
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}

	sess := GetSessionFromContext(r.Context())
	body, err := parseResourceBody(r, st.schema)
	if err != nil {
		h.renderPageError(w, r, "resource_list", h.listBuilder(r, st), err)
		return
	}
	if updateErr := h.Resources.Update(r.Context(), sess.AccessToken, resource, id, body); updateErr != nil {
		h.renderPageError(w, r, "resource_list", h.listBuilder(r, st), updateErr)
		return
	}

	h.Bootstrap.Invalidate(sess.ID)
	http.Redirect(w, r, "/admin/"+resource, http.StatusSeeOther)
}

// ResourceDelete removes a row. The backend may answer with a detail instead
// of a plain delete, such as deactivating a product that has sales; that
// detail is surfaced as the flash message.
func (h *Handlers) ResourceDelete(w http.ResponseWriter, r *http.Request) {
	resource := r.PathValue("resource")
	id, err := pathInt64(r, "id")
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}

	sess := GetSessionFromContext(r.Context())
	detail, err := h.Resources.Delete(r.Context(), sess.AccessToken, resource, id)
	if err != nil {
		st, listErr := h.fetchList(r, resource)
		if listErr != nil {
			h.renderFailure(w, r, err)
			return
		}
		h.renderPageError(w, r, "resource_list", h.listBuilder(r, st), err)
		return
	}

	h.Bootstrap.Invalidate(sess.ID)
	st, err := h.fetchList(r, resource)
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}
	b := h.listBuilder(r, st)
	if detail != "" {
		b.WithFlash(detail)
	} else {
		b.WithFlash(st.schema.Singular + " eliminado.")
	}
	h.renderList(w, r, b)
}

// UserPasswordSubmit lets an admin set another user's password.
func (h *Handlers) UserPasswordSubmit(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt64(r, "id")
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}

	sess := GetSessionFromContext(r.Context())
	setErr := h.Accounts.SetUserPassword(
		r.Context(),
		sess.AccessToken,
		userID,
		r.PostFormValue("new_password"),
		r.PostFormValue("confirm_password"),
	)

	st, listErr := h.fetchList(r, "users")
	if listErr != nil {
		h.renderFailure(w, r, listErr)
		return
	}
	if setErr != nil {
		h.renderPageError(w, r, "resource_list", h.listBuilder(r, st), setErr)
		return
	}
	h.renderList(w, r, h.listBuilder(r, st).WithFlash("Contraseña actualizada."))
}

func (h *Handlers) renderList(w http.ResponseWriter, r *http.Request, b *TemplateDataBuilder) {
	if err := h.T.RenderPage(w, "resource_list", b.Build()); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
