package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	domainauth "github.com/minegocio/pos-web/internal/domain/auth"
	"github.com/minegocio/pos-web/internal/mocks"
	mocksapi "github.com/minegocio/pos-web/internal/mocks/api"
	mocksauth "github.com/minegocio/pos-web/internal/mocks/auth"
	"github.com/minegocio/pos-web/internal/ports"
	"github.com/minegocio/pos-web/internal/service"
	"github.com/minegocio/pos-web/internal/testutil"
)

// TestTemplateDir is the template root relative to this package's tests.
const TestTemplateDir = "../../frontend/templates"

// RequireTemplateRenderer creates a TemplateRenderer for tests, skipping the
// test when the template files are not available.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TestTemplateDir),
	})
	if err != nil {
		t.Skipf("templates not available, skipping: %v", err)
		return nil
	}
	return tr
}

// handlerEnv wires Handlers over in-memory doubles and exposes the doubles so
// tests can seed data and set expectations. Requests run through the full
// router, so routing and the auth middleware are exercised too.
type handlerEnv struct {
	Router  http.Handler
	Session domainauth.Session

	Sessions   *service.SessionService
	Tokens     *mocksauth.MockTokenAPI
	Catalog    *mocksapi.StubCatalogAPI
	Sales      *mocksapi.MockSalesAPI
	Carts      *mocksauth.MemoryCartStore
	Resources  *mocks.MockResourceAPI
	CashCounts *mocks.MockCashCountAPI
	Pricing    *mocks.MockPricingAPI
	Accounts   *mocks.MockAccountAPI
	Reports    *mocks.MockReportsAPI
}

// newHandlerEnv builds a router with a logged-in session whose role is
// derived from groups.
func newHandlerEnv(t *testing.T, groups []string) *handlerEnv {
	t.Helper()

	tr := RequireTemplateRenderer(t)
	ctrl := gomock.NewController(t)

	tokens := mocksauth.NewMockTokenAPI()
	tokens.Pair = ports.TokenPair{
		Access:  testutil.AccessToken(t, "caro", groups, time.Now().Add(5*time.Minute)),
		Refresh: "refresh-1",
	}
	carts := mocksauth.NewMemoryCartStore()
	sessionSvc := service.NewSessionService(service.SessionServiceOptions{
		Tokens:   tokens,
		Sessions: mocksauth.NewMemorySessionStore(),
		Carts:    carts,
	})
	t.Cleanup(sessionSvc.Close)

	sess, err := sessionSvc.Login(context.Background(), "caro", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	env := &handlerEnv{
		Session:    sess,
		Sessions:   sessionSvc,
		Tokens:     tokens,
		Catalog:    &mocksapi.StubCatalogAPI{},
		Sales:      &mocksapi.MockSalesAPI{},
		Carts:      carts,
		Resources:  mocks.NewMockResourceAPI(ctrl),
		CashCounts: mocks.NewMockCashCountAPI(ctrl),
		Pricing:    mocks.NewMockPricingAPI(ctrl),
		Accounts:   mocks.NewMockAccountAPI(ctrl),
		Reports:    mocks.NewMockReportsAPI(ctrl),
	}

	h := Handlers{
		Sessions: sessionSvc,
		Bootstrap: service.NewBootstrapService(service.BootstrapServiceOptions{
			Catalog:  env.Catalog,
			Sessions: sessionSvc,
		}),
		Cart: service.NewCartService(service.CartServiceOptions{
			Carts: carts,
			Sales: env.Sales,
		}),
		Resources: service.NewResourceService(service.ResourceServiceOptions{API: env.Resources}),
		CashCount: service.NewCashCountService(service.CashCountServiceOptions{API: env.CashCounts}),
		BulkPrice: service.NewBulkPriceService(service.BulkPriceServiceOptions{API: env.Pricing}),
		Accounts:  service.NewAccountService(service.AccountServiceOptions{API: env.Accounts}),
		Reports:   service.NewReportsService(service.ReportsServiceOptions{API: env.Reports}),
		Catalog:   env.Catalog,
		T:         tr,
	}

	env.Router = NewRouter(RouterServices{Handlers: h})
	return env
}

func newCashierEnv(t *testing.T) *handlerEnv {
	t.Helper()
	return newHandlerEnv(t, []string{"Vendedores"})
}

func newAdminEnv(t *testing.T) *handlerEnv {
	t.Helper()
	return newHandlerEnv(t, []string{domainauth.AdminGroup})
}

// do performs a request through the router with the session cookie attached.
// A nil form produces a request without a body.
func (e *handlerEnv) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: e.Session.ID})
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// doAnonymous performs a request without the session cookie.
func (e *handlerEnv) doAnonymous(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}
