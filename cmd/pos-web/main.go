package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	posweb "github.com/minegocio/pos-web"
	"github.com/minegocio/pos-web/config"
	"github.com/minegocio/pos-web/internal/bootstrap"
	httpx "github.com/minegocio/pos-web/internal/http"
)

func main() {
	ctx := context.Background()
	logger := slog.Default()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger = bootstrap.InitLogger(cfg.Observability)
	logStartupInfo(ctx, logger, &cfg)

	redisClient, err := bootstrap.ConnectRedis(cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if cerr := redisClient.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close redis failed", "error", cerr)
		}
	}()

	services, err := bootstrap.InitServices(bootstrap.ServiceDeps{
		Config:      &cfg,
		RedisClient: redisClient,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("init services: %w", err)
	}

	templateFS, err := fs.Sub(posweb.TemplateFS, "frontend/templates")
	if err != nil {
		return fmt.Errorf("open embedded templates: %w", err)
	}
	renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	staticFS, err := fs.Sub(posweb.StaticFS, "frontend/static")
	if err != nil {
		return fmt.Errorf("open embedded static assets: %w", err)
	}

	server := bootstrap.StartHTTPServer(&bootstrap.HTTPServerConfig{
		Config:   &cfg,
		Services: services,
		Renderer: renderer,
		StaticFS: staticFS,
		Logger:   logger,
	})

	notifyCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-notifyCtx.Done()
	stop()

	return bootstrap.ShutdownHTTPServer(bootstrap.ShutdownConfig{
		Context:  ctx,
		Server:   server,
		Services: services,
		Timeout:  cfg.HTTP.ShutdownTimeout,
		Logger:   logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting pos-web",
		"addr", cfg.HTTP.Addr,
		"backend", cfg.Backend.BaseURL,
		"dev", cfg.IsDev,
		"metrics", cfg.Observability.Metrics.IsEnabled())
}
