package model

import "github.com/shopspring/decimal"

// DashboardKPIs are the day's headline figures, produced by the backend.
type DashboardKPIs struct {
	SalesToday       decimal.Decimal `json:"ventas_del_dia"`
	GrossProfitToday decimal.Decimal `json:"ganancia_bruta_del_dia"`
	AverageTicket    decimal.Decimal `json:"ticket_promedio"`
	ItemsSold        int             `json:"productos_vendidos"`
}

// LowStockProduct is a dashboard row for products nearly out of stock.
type LowStockProduct struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// MethodTotal is a 30-day sales aggregate per payment method.
type MethodTotal struct {
	PaymentMethod string          `json:"payment_method__name"`
	Total         decimal.Decimal `json:"total"`
}

// DashboardReport is the bootstrap dashboard payload.
type DashboardReport struct {
	KPIs                 DashboardKPIs     `json:"kpis"`
	LowStockProducts     []LowStockProduct `json:"low_stock_products"`
	SalesByPaymentMethod []MethodTotal     `json:"sales_by_payment_method"`
	TopSellingProducts   []TopProduct      `json:"top_selling_products"`
}

// TopProduct is a best-seller row.
type TopProduct struct {
	ID       int64  `json:"product__id"`
	Name     string `json:"product__name"`
	Quantity int    `json:"total_quantity"`
}

// RangedReport is the reports screen payload for an arbitrary date range.
// The server produces it; the client renders it as-is.
type RangedReport struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	SalesCount    int             `json:"sales_count"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	TopProducts   []TopProduct    `json:"top_products"`
}
