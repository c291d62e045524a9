package httpx

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	domainauth "github.com/minegocio/pos-web/internal/domain/auth"
	"github.com/minegocio/pos-web/internal/domain/model"
	apperrors "github.com/minegocio/pos-web/internal/errors"
	"github.com/minegocio/pos-web/internal/pagination"
	"github.com/minegocio/pos-web/internal/ports"
	"github.com/minegocio/pos-web/internal/service"
)

// posPageSize is the product grid page size. The grid is paged locally over
// the bootstrap product set; the backend is not consulted per page.
const posPageSize = 8

type productFilter struct {
	Query string
}

func filterProducts(items []model.Product, f productFilter) []model.Product {
	if f.Query == "" {
		return items
	}
	return model.SearchProducts(items, f.Query)
}

// posView is everything the POS screen renders from: the session, the
// bootstrap working set, and the persisted cart.
type posView struct {
	sess *domainauth.Session
	data *service.AppData
	cart ports.CartState
}

// loadPOS gathers the POS view state. On failure it has already written the
// response and returns ok=false.
func (h *Handlers) loadPOS(w http.ResponseWriter, r *http.Request) (posView, bool) {
	sess := GetSessionFromContext(r.Context())

	data, err := h.Bootstrap.Load(r.Context(), *sess)
	if err != nil {
		h.renderFailure(w, r, err)
		return posView{}, false
	}

	cart, err := h.Cart.State(r.Context(), sess.ID)
	if err != nil {
		h.renderFailure(w, r, err)
		return posView{}, false
	}

	return posView{sess: sess, data: data, cart: cart}, true
}

// posBuilder assembles the template data common to every render of the POS
// page: the paged product grid, the cart with its totals, and the payment
// selection.
func (h *Handlers) posBuilder(r *http.Request, v posView) *TemplateDataBuilder {
	query := r.URL.Query().Get("q")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	pager := pagination.NewPager(
		model.ActiveProducts(v.data.Products),
		posPageSize,
		filterProducts,
		productFilter{Query: query},
	)
	pager.GoToPage(page)

	b := NewTemplateData(r, PageMeta{
		Title:       "Punto de venta",
		PageTitle:   "Punto de venta",
		CurrentPage: "pos",
	}).
		WithPagination(PaginationData{
			Page:       pager.CurrentPage(),
			PageSize:   pager.PageSize(),
			TotalItems: pager.TotalItems(),
			TotalPages: pager.TotalPages(),
			BasePath:   "/pos",
		}).
		With("Products", pager.Page()).
		With("PopularProducts", v.data.PopularProducts).
		With("SearchQuery", query).
		With("CartLines", v.cart.Cart.Lines).
		With("CartEmpty", v.cart.Cart.IsEmpty()).
		With("Subtotal", v.cart.Cart.Subtotal()).
		With("PaymentMethods", v.data.PaymentMethods).
		With("SelectedMethodID", v.cart.PaymentMethodID).
		With("CashReceived", v.cart.CashReceived)

	if method, ok := model.FindPaymentMethod(v.data.PaymentMethods, v.cart.PaymentMethodID); ok {
		b.With("Adjustment", v.cart.Cart.AdjustmentAmount(method)).
			With("Total", v.cart.Cart.Total(method)).
			With("RequiresTender", method.RequiresTender())
		if cash, err := decimal.NewFromString(v.cart.CashReceived); err == nil {
			b.With("ChangeDue", v.cart.Cart.ChangeDue(method, cash))
		}
	}

	return b
}

// POSPage renders the point of sale: product grid, cart, and payment panel.
func (h *Handlers) POSPage(w http.ResponseWriter, r *http.Request) {
	v, ok := h.loadPOS(w, r)
	if !ok {
		return
	}
	h.renderPOS(w, r, h.posBuilder(r, v))
}

// POSSearch handles the scan/search box. A single match goes straight into
// the cart; several matches are shown for the cashier to pick from.
func (h *Handlers) POSSearch(w http.ResponseWriter, r *http.Request) {
	v, ok := h.loadPOS(w, r)
	if !ok {
		return
	}

	query := r.PostFormValue("q")
	outcome, err := h.Cart.SearchAndAdd(r.Context(), v.sess.ID, query, v.data.Products)
	if err != nil {
		h.renderPageError(w, r, "pos", h.posBuilder(r, v), err)
		return
	}

	if outcome.Added != nil {
		http.Redirect(w, r, "/pos", http.StatusSeeOther)
		return
	}

	h.renderPOS(w, r, h.posBuilder(r, v).
		With("SearchMatches", outcome.Matches).
		With("SearchQuery", query))
}

// CartAdd adds a product from the grid to the cart.
func (h *Handlers) CartAdd(w http.ResponseWriter, r *http.Request) {
	v, ok := h.loadPOS(w, r)
	if !ok {
		return
	}

	productID, err := formInt64(r, "product_id")
	if err != nil {
		h.renderPageError(w, r, "pos", h.posBuilder(r, v), err)
		return
	}
	qty := 1
	if raw := r.PostFormValue("quantity"); raw != "" {
		if qty, err = strconv.Atoi(raw); err != nil {
			h.renderPageError(w, r, "pos", h.posBuilder(r, v),
				apperrors.Validation("Enter a valid quantity."))
			return
		}
	}

	product, found := findProduct(v.data.Products, productID)
	if !found {
		h.renderPageError(w, r, "pos", h.posBuilder(r, v),
			apperrors.NotFound("That product is no longer available."))
		return
	}

	if addErr := h.Cart.AddProduct(r.Context(), v.sess.ID, product, qty); addErr != nil {
		h.renderPageError(w, r, "pos", h.posBuilder(r, v), addErr)
		return
	}
	http.Redirect(w, r, "/pos", http.StatusSeeOther)
}

// CartSetQuantity sets a cart line to an exact quantity.
func (h *Handlers) CartSetQuantity(w http.ResponseWriter, r *http.Request) {
	v, ok := h.loadPOS(w, r)
	if !ok {
		return
	}

	productID, err := formInt64(r, "product_id")
	if err != nil {
		h.renderPageError(w, r, "pos", h.posBuilder(r, v), err)
		return
	}
	qty, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil {
		h.renderPageError(w, r, "pos", h.posBuilder(r, v),
			apperrors.Validation("Enter a valid quantity."))
		return
	}

	change, setErr := h.Cart.SetQuantity(r.Context(), v.sess.ID, productID, qty)
	if setErr != nil {
		h.renderPageError(w, r, "pos", h.posBuilder(r, v), setErr)
		return
	}

	if change.Clamped {
		// Re-read the cart so the page shows the clamped line.
		if cart, stateErr := h.Cart.State(r.Context(), v.sess.ID); stateErr == nil {
			v.cart = cart
		}
		h.renderPOS(w, r, h.posBuilder(r, v).
			WithFlash(fmt.Sprintf("Stock máximo (%d) alcanzado.", change.Quantity)))
		return
	}
	http.Redirect(w, r, "/pos", http.StatusSeeOther)
}

// CartRemove drops a line from the cart.
func (h *Handlers) CartRemove(w http.ResponseWriter, r *http.Request) {
	v, ok := h.loadPOS(w, r)
	if !ok {
		return
	}

	productID, err := formInt64(r, "product_id")
	if err != nil {
		h.renderPageError(w, r, "pos", h.posBuilder(r, v), err)
		return
	}

	if removeErr := h.Cart.RemoveLine(r.Context(), v.sess.ID, productID); removeErr != nil {
		h.renderPageError(w, r, "pos", h.posBuilder(r, v), removeErr)
		return
	}
	http.Redirect(w, r, "/pos", http.StatusSeeOther)
}

// CartClear empties the cart.
func (h *Handlers) CartClear(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	if err := h.Cart.Clear(r.Context(), sess.ID); err != nil {
		h.renderFailure(w, r, err)
		return
	}
	http.Redirect(w, r, "/pos", http.StatusSeeOther)
}

// CartSelectPaymentMethod records the payment method for checkout.
func (h *Handlers) CartSelectPaymentMethod(w http.ResponseWriter, r *http.Request) {
	v, ok := h.loadPOS(w, r)
	if !ok {
		return
	}

	methodID, err := formInt64(r, "payment_method_id")
	if err != nil {
		h.renderPageError(w, r, "pos", h.posBuilder(r, v), err)
		return
	}

	if selErr := h.Cart.SelectPaymentMethod(r.Context(), v.sess.ID, methodID); selErr != nil {
		h.renderPageError(w, r, "pos", h.posBuilder(r, v), selErr)
		return
	}
	http.Redirect(w, r, "/pos", http.StatusSeeOther)
}

// CartSetCash records the tendered cash amount.
func (h *Handlers) CartSetCash(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	if err := h.Cart.SetCashReceived(r.Context(), sess.ID, r.PostFormValue("cash_received")); err != nil {
		h.renderFailure(w, r, err)
		return
	}
	http.Redirect(w, r, "/pos", http.StatusSeeOther)
}

// Checkout records the sale and shows the receipt. Any failure re-renders the
// POS page with the cart intact so the cashier can retry.
func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	v, ok := h.loadPOS(w, r)
	if !ok {
		return
	}

	result, err := h.Cart.Checkout(r.Context(), v.sess.ID, v.sess.AccessToken, v.data.PaymentMethods)
	if err != nil {
		h.renderPageError(w, r, "pos", h.posBuilder(r, v), err)
		return
	}

	// The sale changed stock and the sales list; drop the cached working
	// set so the next page load refetches.
	h.Bootstrap.Invalidate(v.sess.ID)

	// The cart is gone; rebuild the view with the emptied state.
	v.cart = ports.CartState{}
	h.renderPOS(w, r, h.posBuilder(r, v).
		With("Receipt", result).
		WithFlash("Venta registrada."))
}

// SaleCancel voids a recorded sale, restoring stock.
func (h *Handlers) SaleCancel(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	saleID, err := pathInt64(r, "id")
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}

	if cancelErr := h.Cart.CancelSale(r.Context(), sess.AccessToken, saleID); cancelErr != nil {
		h.renderFailure(w, r, cancelErr)
		return
	}
	h.Bootstrap.Invalidate(sess.ID)
	http.Redirect(w, r, "/admin/sales", http.StatusSeeOther)
}

func (h *Handlers) renderPOS(w http.ResponseWriter, r *http.Request, b *TemplateDataBuilder) {
	if err := h.T.RenderPage(w, "pos", b.Build()); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func findProduct(products []model.Product, id int64) (model.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}
