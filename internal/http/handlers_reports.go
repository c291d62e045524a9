package httpx

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// DashboardPage renders the admin landing page: the day's KPIs, the low-stock
// list, and the 30-day per-method totals.
func (h *Handlers) DashboardPage(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	report, err := h.Reports.Dashboard(r.Context(), sess.AccessToken)
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}

	data := NewTemplateData(r, PageMeta{
		Title:       "Panel",
		PageTitle:   "Panel de administración",
		CurrentPage: "dashboard",
	}).
		With("KPIs", report.KPIs).
		With("LowStockProducts", report.LowStockProducts).
		With("SalesByPaymentMethod", report.SalesByPaymentMethod).
		With("TopSellingProducts", report.TopSellingProducts).
		Build()
	if renderErr := h.T.RenderPage(w, "dashboard", data); renderErr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// reportRange reads the date range from the query, defaulting to the last
// thirty days so the page has content on first load.
func reportRange(r *http.Request) (from, to string) {
	from = r.URL.Query().Get("start_date")
	to = r.URL.Query().Get("end_date")
	if from == "" && to == "" {
		now := time.Now()
		from = now.AddDate(0, 0, -30).Format("2006-01-02")
		to = now.Format("2006-01-02")
	}
	return from, to
}

func reportsMeta() PageMeta {
	return PageMeta{
		Title:       "Reportes",
		PageTitle:   "Reportes de ventas",
		CurrentPage: "reports",
	}
}

// ReportsPage renders the ranged sales report.
func (h *Handlers) ReportsPage(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	from, to := reportRange(r)

	b := NewTemplateData(r, reportsMeta()).
		With("StartDate", from).
		With("EndDate", to)

	report, err := h.Reports.Ranged(r.Context(), sess.AccessToken, from, to)
	if err != nil {
		h.renderPageError(w, r, "reports", b, err)
		return
	}

	data := b.
		With("TotalSales", report.TotalSales).
		With("SalesCount", report.SalesCount).
		With("AverageTicket", report.AverageTicket).
		With("TopProducts", report.TopProducts).
		Build()
	if renderErr := h.T.RenderPage(w, "reports", data); renderErr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ReportsExport streams the backend-produced sales spreadsheet for the range.
func (h *Handlers) ReportsExport(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())
	from, to := reportRange(r)

	rc, err := h.Reports.ExportSales(r.Context(), sess.AccessToken, from, to)
	if err != nil {
		h.renderFailure(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "ventas_"+from+"_"+to+".xlsx"))
	if _, copyErr := io.Copy(w, rc); copyErr != nil {
		h.Logger.WarnContext(r.Context(), "sales export stream interrupted", "error", copyErr)
	}
}
