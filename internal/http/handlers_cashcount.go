package httpx

import (
	"net/http"

	"github.com/minegocio/pos-web/internal/domain/model"
)

func (h *Handlers) cashCountBuilder(r *http.Request, today model.CashCountToday) *TemplateDataBuilder {
	return NewTemplateData(r, PageMeta{
		Title:       "Arqueo de caja",
		PageTitle:   "Arqueo de caja",
		CurrentPage: "cash-count",
	}).
		With("ExpectedAmount", today.ExpectedAmount).
		With("History", today.History).
		With("AlreadyClosed", today.AlreadyClosed).
		With("ClosedMessage", today.Message)
}

// CashCountPage shows today's expected amount and the reconciliation history.
// When today's register is already closed the form is replaced by the
// backend's message.
func (h *Handlers) CashCountPage(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	today, err := h.CashCount.Today(r.Context(), sess.AccessToken)
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}

	if renderErr := h.T.RenderPage(w, "cashcount", h.cashCountBuilder(r, today).Build()); renderErr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// CashCountSubmit closes today's register with the counted amount.
func (h *Handlers) CashCountSubmit(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	today, err := h.CashCount.Today(r.Context(), sess.AccessToken)
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}

	message, difference, err := h.CashCount.Close(
		r.Context(),
		sess.AccessToken,
		today.ExpectedAmount,
		r.PostFormValue("counted_amount"),
	)
	if err != nil {
		h.renderPageError(w, r, "cashcount", h.cashCountBuilder(r, today), err)
		return
	}

	refreshed, err := h.CashCount.Today(r.Context(), sess.AccessToken)
	if err != nil {
		refreshed = today
	}
	b := h.cashCountBuilder(r, refreshed).
		WithFlash(message).
		With("Difference", difference)
	if renderErr := h.T.RenderPage(w, "cashcount", b.Build()); renderErr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
