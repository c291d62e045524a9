package httpx

import (
	"net/http"

	"github.com/minegocio/pos-web/internal/domain/model"
)

func (h *Handlers) bulkPriceBuilder(r *http.Request) (*TemplateDataBuilder, error) {
	sess := GetSessionFromContext(r.Context())
	data, err := h.Bootstrap.Load(r.Context(), *sess)
	if err != nil {
		return nil, err
	}

	return NewTemplateData(r, PageMeta{
		Title:       "Actualización de precios",
		PageTitle:   "Actualización masiva de precios",
		CurrentPage: "bulk-price",
	}).With("Products", data.Products), nil
}

// BulkPricePage renders the product selection for a bulk price change.
func (h *Handlers) BulkPricePage(w http.ResponseWriter, r *http.Request) {
	b, err := h.bulkPriceBuilder(r)
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}
	if renderErr := h.T.RenderPage(w, "bulkprice", b.Build()); renderErr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// BulkPriceSubmit applies a percentage change to the selected products.
func (h *Handlers) BulkPriceSubmit(w http.ResponseWriter, r *http.Request) {
	b, err := h.bulkPriceBuilder(r)
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}

	productIDs, err := formInt64List(r, "product_ids")
	if err != nil {
		h.renderPageError(w, r, "bulkprice", b, err)
		return
	}

	sess := GetSessionFromContext(r.Context())
	message, err := h.BulkPrice.Apply(
		r.Context(),
		sess.AccessToken,
		productIDs,
		r.PostFormValue("percentage"),
		model.BulkPriceTarget(r.PostFormValue("update_target")),
	)
	if err != nil {
		h.renderPageError(w, r, "bulkprice", b, err)
		return
	}

	// Reload so the table shows the updated prices.
	h.Bootstrap.Invalidate(sess.ID)
	refreshed, reloadErr := h.bulkPriceBuilder(r)
	if reloadErr != nil {
		h.renderFailure(w, r, reloadErr)
		return
	}
	if renderErr := h.T.RenderPage(w, "bulkprice", refreshed.WithFlash(message).Build()); renderErr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
