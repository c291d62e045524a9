package httpx

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/minegocio/pos-web/internal/domain/model"
	apperrors "github.com/minegocio/pos-web/internal/errors"
)

func TestDashboardPage(t *testing.T) {
	env := newAdminEnv(t)
	env.Reports.EXPECT().
		Dashboard(gomock.Any(), env.Session.AccessToken).
		Return(model.DashboardReport{
			KPIs: model.DashboardKPIs{
				SalesToday:       decimal.NewFromFloat(340.50),
				GrossProfitToday: decimal.NewFromFloat(95.20),
				AverageTicket:    decimal.NewFromFloat(17.02),
				ItemsSold:        42,
			},
			LowStockProducts: []model.LowStockProduct{
				{ID: 2, Name: "Azúcar 1kg", Stock: 3},
			},
			SalesByPaymentMethod: []model.MethodTotal{
				{PaymentMethod: "Efectivo", Total: decimal.NewFromFloat(210)},
			},
			TopSellingProducts: []model.TopProduct{
				{ID: 1, Name: "Café molido 250g", Quantity: 18},
			},
		}, nil)

	w := env.do(http.MethodGet, "/dashboard", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "$340.50")
	assert.Contains(t, body, "$17.02")
	assert.Contains(t, body, "Azúcar 1kg")
	assert.Contains(t, body, "Efectivo")
	assert.Contains(t, body, "Café molido 250g")
}

func TestReportsPage(t *testing.T) {
	t.Run("defaults to the last thirty days", func(t *testing.T) {
		env := newAdminEnv(t)
		wantFrom := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
		wantTo := time.Now().Format("2006-01-02")
		env.Reports.EXPECT().
			Ranged(gomock.Any(), env.Session.AccessToken, wantFrom, wantTo).
			Return(model.RangedReport{
				TotalSales:    decimal.NewFromFloat(1250),
				SalesCount:    80,
				AverageTicket: decimal.NewFromFloat(15.63),
			}, nil)

		w := env.do(http.MethodGet, "/reports", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "$1250.00")
		assert.Contains(t, body, "$15.63")
		assert.Contains(t, body, wantFrom)
	})

	t.Run("explicit range is passed through", func(t *testing.T) {
		env := newAdminEnv(t)
		env.Reports.EXPECT().
			Ranged(gomock.Any(), gomock.Any(), "2026-07-01", "2026-07-31").
			Return(model.RangedReport{}, nil)

		w := env.do(http.MethodGet, "/reports?start_date=2026-07-01&end_date=2026-07-31", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("inverted range re-renders with the field error", func(t *testing.T) {
		env := newAdminEnv(t)

		w := env.do(http.MethodGet, "/reports?start_date=2026-07-31&end_date=2026-07-01", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "The end date is before the start date.")
	})
}

func TestReportsExport(t *testing.T) {
	t.Run("streams the spreadsheet with the download headers", func(t *testing.T) {
		env := newAdminEnv(t)
		env.Reports.EXPECT().
			ExportSales(gomock.Any(), env.Session.AccessToken, "2026-07-01", "2026-07-31").
			Return(io.NopCloser(strings.NewReader("xlsx-bytes")), nil)

		w := env.do(http.MethodGet, "/reports/export?start_date=2026-07-01&end_date=2026-07-31", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			w.Header().Get("Content-Type"))
		assert.Equal(t,
			`attachment; filename="ventas_2026-07-01_2026-07-31.xlsx"`,
			w.Header().Get("Content-Disposition"))
		assert.Equal(t, "xlsx-bytes", w.Body.String())
	})

	t.Run("backend failure renders the error page", func(t *testing.T) {
		env := newAdminEnv(t)
		env.Reports.EXPECT().
			ExportSales(gomock.Any(), gomock.Any(), "2026-07-01", "2026-07-31").
			Return(nil, apperrors.Unavailable("POS backend unreachable."))

		w := env.do(http.MethodGet, "/reports/export?start_date=2026-07-01&end_date=2026-07-31", nil)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
