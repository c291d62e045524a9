package bootstrap

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/minegocio/pos-web/config"
	httpx "github.com/minegocio/pos-web/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services *ServiceContainer
	Renderer *httpx.TemplateRenderer
	StaticFS fs.FS
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil || cfg.Services == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	svc := cfg.Services
	routerServices := httpx.RouterServices{
		Handlers: httpx.Handlers{
			Sessions:      svc.Sessions,
			Bootstrap:     svc.Bootstrap,
			Cart:          svc.Cart,
			Resources:     svc.Resources,
			CashCount:     svc.CashCount,
			BulkPrice:     svc.BulkPrice,
			Accounts:      svc.Accounts,
			Reports:       svc.Reports,
			Catalog:       svc.Catalog,
			T:             cfg.Renderer,
			Logger:        logger,
			CookieDomain:  appCfg.HTTP.CookieDomain,
			SecureCookies: appCfg.HTTP.SecureCookies,
		},
		StaticFS: cfg.StaticFS,
		Logger:   logger,
	}
	if svc.Metrics != nil && svc.Metrics.Enabled() {
		routerServices.Metrics = svc.Metrics
	}

	handler := httpx.NewRouter(routerServices)
	server := startServer(logger, handler, appCfg.HTTP)

	return server
}

func startServer(logger *slog.Logger, handler http.Handler, cfg config.HTTPConfig) *http.Server {
	addr := cfg.Addr
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context  context.Context
	Server   *http.Server
	Services *ServiceContainer
	Timeout  time.Duration
	Logger   *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server, then stops the
// refresh timers and releases service resources.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(cfg.Context, timeout)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	cfg.Services.Close()

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}

	return nil
}
