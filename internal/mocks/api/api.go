package api

// Package api contains hand-written test doubles for the catalog and sales
// ports, whose wide surfaces make gomock expectations noisy.

import (
	"context"
	"sync"

	"github.com/minegocio/pos-web/internal/domain/model"
	"github.com/minegocio/pos-web/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CatalogAPI = (*StubCatalogAPI)(nil)
	_ ports.SalesAPI   = (*MockSalesAPI)(nil)
)

// StubCatalogAPI serves canned collections. Set Err to make every call fail,
// or a per-collection ErrOn entry to fail just one.
type StubCatalogAPI struct {
	ProductsData       []model.Product
	PopularData        []model.Product
	SalesData          []model.Sale
	PaymentMethodsData []model.PaymentMethod
	ProvidersData      []model.Provider
	ClientsData        []model.Client
	CategoriesData     []model.Category
	UsersData          []model.User
	GroupsData         []model.Group

	Err   error
	ErrOn map[string]error

	mu    sync.Mutex
	calls []string
}

func (s *StubCatalogAPI) fail(name string) error {
	s.mu.Lock()
	s.calls = append(s.calls, name)
	s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if err, ok := s.ErrOn[name]; ok {
		return err
	}
	return nil
}

// Calls returns the collection names fetched so far.
func (s *StubCatalogAPI) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *StubCatalogAPI) Products(_ context.Context, _ string) ([]model.Product, error) {
	return s.ProductsData, s.fail("products")
}

func (s *StubCatalogAPI) PopularProducts(_ context.Context, _ string) ([]model.Product, error) {
	return s.PopularData, s.fail("popular")
}

func (s *StubCatalogAPI) Sales(_ context.Context, _ string) ([]model.Sale, error) {
	return s.SalesData, s.fail("sales")
}

func (s *StubCatalogAPI) PaymentMethods(_ context.Context, _ string) ([]model.PaymentMethod, error) {
	return s.PaymentMethodsData, s.fail("payment-methods")
}

func (s *StubCatalogAPI) Providers(_ context.Context, _ string) ([]model.Provider, error) {
	return s.ProvidersData, s.fail("providers")
}

func (s *StubCatalogAPI) Clients(_ context.Context, _ string) ([]model.Client, error) {
	return s.ClientsData, s.fail("clients")
}

func (s *StubCatalogAPI) Categories(_ context.Context, _ string) ([]model.Category, error) {
	return s.CategoriesData, s.fail("categories")
}

func (s *StubCatalogAPI) Users(_ context.Context, _ string) ([]model.User, error) {
	return s.UsersData, s.fail("users")
}

func (s *StubCatalogAPI) Groups(_ context.Context, _ string) ([]model.Group, error) {
	return s.GroupsData, s.fail("groups")
}

func (s *StubCatalogAPI) AdminPaymentMethods(_ context.Context, _ string) ([]model.PaymentMethod, error) {
	return s.PaymentMethodsData, s.fail("admin-payment-methods")
}

// MockSalesAPI records sales in memory. Override the Func fields for failure
// scenarios.
type MockSalesAPI struct {
	RecordFunc func(ctx context.Context, token string, sale model.NewSale) (model.Sale, error)
	CancelFunc func(ctx context.Context, token string, saleID int64) error

	mu       sync.Mutex
	Recorded []model.NewSale
	Canceled []int64
	nextID   int64
}

func (m *MockSalesAPI) RecordSale(ctx context.Context, token string, sale model.NewSale) (model.Sale, error) {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, token, sale)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.Recorded = append(m.Recorded, sale)
	return model.Sale{ID: m.nextID, Status: model.SaleCompleted}, nil
}

func (m *MockSalesAPI) CancelSale(ctx context.Context, token string, saleID int64) error {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, token, saleID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Canceled = append(m.Canceled, saleID)
	return nil
}
