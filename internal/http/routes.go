package httpx

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/minegocio/pos-web/internal/observability/statsd"
	"github.com/minegocio/pos-web/internal/ports"
	"github.com/minegocio/pos-web/internal/service"
)

// Handlers bundles the services and rendering machinery behind the routes.
type Handlers struct {
	Sessions  SessionAuth
	Bootstrap *service.BootstrapService
	Cart      *service.CartService
	Resources *service.ResourceService
	CashCount *service.CashCountService
	BulkPrice *service.BulkPriceService
	Accounts  *service.AccountService
	Reports   *service.ReportsService
	Catalog   ports.CatalogAPI

	T      *TemplateRenderer
	Logger *slog.Logger

	CookieDomain  string
	SecureCookies bool
}

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Handlers Handlers
	// StaticFS serves /static/ when set; its root maps to the URL prefix.
	StaticFS fs.FS
	Metrics  statsd.Sink
	Logger   *slog.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	h := services.Handlers
	if h.Logger == nil {
		h.Logger = slog.Default()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)

	if services.StaticFS != nil {
		mux.Handle("GET /static/",
			http.StripPrefix("/static/", http.FileServerFS(services.StaticFS)))
	}

	mux.HandleFunc("GET /login", h.LoginPage)
	mux.HandleFunc("POST /login", h.LoginSubmit)
	mux.HandleFunc("POST /logout", h.Logout)

	user := RequireSession(h.Sessions)
	admin := RequireAdmin(h.Sessions)

	mux.Handle("GET /{$}", user(http.HandlerFunc(h.Home)))

	// Point of sale
	mux.Handle("GET /pos", user(http.HandlerFunc(h.POSPage)))
	mux.Handle("POST /pos/search", user(http.HandlerFunc(h.POSSearch)))
	mux.Handle("POST /pos/cart/add", user(http.HandlerFunc(h.CartAdd)))
	mux.Handle("POST /pos/cart/quantity", user(http.HandlerFunc(h.CartSetQuantity)))
	mux.Handle("POST /pos/cart/remove", user(http.HandlerFunc(h.CartRemove)))
	mux.Handle("POST /pos/cart/clear", user(http.HandlerFunc(h.CartClear)))
	mux.Handle("POST /pos/cart/payment-method", user(http.HandlerFunc(h.CartSelectPaymentMethod)))
	mux.Handle("POST /pos/cart/cash", user(http.HandlerFunc(h.CartSetCash)))
	mux.Handle("POST /pos/checkout", user(http.HandlerFunc(h.Checkout)))
	mux.Handle("POST /sales/{id}/cancel", admin(http.HandlerFunc(h.SaleCancel)))

	// Reconciliation and account
	mux.Handle("GET /cash-count", user(http.HandlerFunc(h.CashCountPage)))
	mux.Handle("POST /cash-count", user(http.HandlerFunc(h.CashCountSubmit)))
	mux.Handle("GET /password", user(http.HandlerFunc(h.PasswordPage)))
	mux.Handle("POST /password", user(http.HandlerFunc(h.PasswordSubmit)))

	// Admin panel
	mux.Handle("GET /dashboard", admin(http.HandlerFunc(h.DashboardPage)))
	mux.Handle("GET /reports", admin(http.HandlerFunc(h.ReportsPage)))
	mux.Handle("GET /reports/export", admin(http.HandlerFunc(h.ReportsExport)))
	mux.Handle("GET /bulk-price", admin(http.HandlerFunc(h.BulkPricePage)))
	mux.Handle("POST /bulk-price", admin(http.HandlerFunc(h.BulkPriceSubmit)))
	mux.Handle("POST /admin/users/{id}/password", admin(http.HandlerFunc(h.UserPasswordSubmit)))
	mux.Handle("GET /admin/{resource}", admin(http.HandlerFunc(h.ResourceList)))
	mux.Handle("POST /admin/{resource}", admin(http.HandlerFunc(h.ResourceCreate)))
	mux.Handle("POST /admin/{resource}/{id}/update", admin(http.HandlerFunc(h.ResourceUpdate)))
	mux.Handle("POST /admin/{resource}/{id}/delete", admin(http.HandlerFunc(h.ResourceDelete)))

	var handler http.Handler = mux
	if services.Metrics != nil {
		handler = Timing(services.Metrics)(handler)
	}
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	handler = RequestID()(handler)
	return handler
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
