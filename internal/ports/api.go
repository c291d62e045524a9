package ports

// Package ports defines interfaces (hexagonal ports) for the remote POS API
// and session persistence. Implementations live in internal/adapters;
// orchestration in internal/service.

import (
	"context"
	"io"

	"github.com/minegocio/pos-web/internal/domain/model"
)

// TokenPair is the bearer token pair issued by the backend.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenAPI talks to the backend token endpoints. It issues and refreshes the
// bearer pair; validation stays on the backend.
type TokenAPI interface {
	// ObtainToken exchanges credentials for a token pair. Bad credentials come
	// back as a credentials error; connectivity problems as unavailable.
	ObtainToken(ctx context.Context, username, password string) (TokenPair, error)

	// RefreshToken exchanges the refresh token for a new access token. Any
	// rejection (expired/invalid refresh, malformed response) is an error the
	// caller treats as "session over".
	RefreshToken(ctx context.Context, refresh string) (access string, err error)
}

// CatalogAPI fetches the reference collections the shell loads on bootstrap.
// All calls carry the session's access token.
type CatalogAPI interface {
	Products(ctx context.Context, token string) ([]model.Product, error)
	PopularProducts(ctx context.Context, token string) ([]model.Product, error)
	Sales(ctx context.Context, token string) ([]model.Sale, error)
	PaymentMethods(ctx context.Context, token string) ([]model.PaymentMethod, error)
	Providers(ctx context.Context, token string) ([]model.Provider, error)
	Clients(ctx context.Context, token string) ([]model.Client, error)
	Categories(ctx context.Context, token string) ([]model.Category, error)
	Users(ctx context.Context, token string) ([]model.User, error)
	Groups(ctx context.Context, token string) ([]model.Group, error)
	AdminPaymentMethods(ctx context.Context, token string) ([]model.PaymentMethod, error)
}

// ResourceAPI is the generic paginated CRUD surface every admin list screen
// uses: GET /{resource}/?page=&page_size=&filters with a {count, results}
// envelope, and POST/PUT/DELETE on /{resource}/{id}/.
type ResourceAPI interface {
	ListPage(ctx context.Context, token, resource string, q model.PageQuery) (model.PageResult[map[string]any], error)
	Create(ctx context.Context, token, resource string, body map[string]any) error
	Update(ctx context.Context, token, resource string, id int64, body map[string]any) error
	// Delete tolerates both backend conventions: 204 without a body and 200
	// with {detail}.
	Delete(ctx context.Context, token, resource string, id int64) (detail string, err error)
}

// SalesAPI records and cancels sales.
type SalesAPI interface {
	RecordSale(ctx context.Context, token string, sale model.NewSale) (model.Sale, error)
	CancelSale(ctx context.Context, token string, saleID int64) error
}

// ReportsAPI fetches server-produced reports. The client renders them; it
// never computes them.
type ReportsAPI interface {
	Dashboard(ctx context.Context, token string) (model.DashboardReport, error)
	Ranged(ctx context.Context, token, from, to string) (model.RangedReport, error)
	// ExportSales streams the sales spreadsheet for the range. The caller must
	// close the reader.
	ExportSales(ctx context.Context, token, from, to string) (io.ReadCloser, error)
}

// CashCountAPI drives the end-of-day reconciliation.
type CashCountAPI interface {
	// CashCountToday returns the expected amount and history; AlreadyClosed is
	// set when the backend answers 409.
	CashCountToday(ctx context.Context, token string) (model.CashCountToday, error)
	CloseCashCount(ctx context.Context, token string, body model.NewCashCount) (message string, err error)
}

// PricingAPI applies bulk price updates.
type PricingAPI interface {
	BulkPriceUpdate(ctx context.Context, token string, body model.BulkPriceUpdate) (message string, err error)
}

// AccountAPI covers password management.
type AccountAPI interface {
	SetUserPassword(ctx context.Context, token string, userID int64, password string) error
	ChangeOwnPassword(ctx context.Context, token, current, next string) error
}
