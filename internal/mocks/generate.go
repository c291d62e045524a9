// Package mocks provides mock implementations for testing the pos-web services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces with fixed call patterns. The mocks are generated using
// go:generate directives and committed alongside the code.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	mockAPI := mocks.NewMockResourceAPI(ctrl)
//	mockAPI.EXPECT().Delete(gomock.Any(), "tok", "products", int64(9)).Return("", nil)
//
// Hand-written doubles for the auth ports live in the auth subpackage; those
// ports need stateful in-memory behavior that gomock expectations express
// poorly.
package mocks

// Generate mock for ResourceAPI from internal/ports.
// This creates MockResourceAPI with ListPage, Create, Update, Delete.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=resource_api_mock.go github.com/minegocio/pos-web/internal/ports ResourceAPI

// Generate mock for CashCountAPI from internal/ports.
// This creates MockCashCountAPI with CashCountToday, CloseCashCount.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cashcount_api_mock.go github.com/minegocio/pos-web/internal/ports CashCountAPI

// Generate mock for PricingAPI from internal/ports.
// This creates MockPricingAPI with BulkPriceUpdate.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=pricing_api_mock.go github.com/minegocio/pos-web/internal/ports PricingAPI

// Generate mock for AccountAPI from internal/ports.
// This creates MockAccountAPI with SetUserPassword, ChangeOwnPassword.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=account_api_mock.go github.com/minegocio/pos-web/internal/ports AccountAPI

// Generate mock for ReportsAPI from internal/ports.
// This creates MockReportsAPI with Dashboard, Ranged, ExportSales.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=reports_api_mock.go github.com/minegocio/pos-web/internal/ports ReportsAPI
