package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/minegocio/pos-web/config"
	"github.com/minegocio/pos-web/internal/adapters/posapi"
	redisstore "github.com/minegocio/pos-web/internal/adapters/redis"
	"github.com/minegocio/pos-web/internal/observability/notify/slack"
	"github.com/minegocio/pos-web/internal/observability/statsd"
	"github.com/minegocio/pos-web/internal/ports"
	"github.com/minegocio/pos-web/internal/service"
	"github.com/minegocio/pos-web/internal/service/outagenotify"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Sessions  *service.SessionService
	Bootstrap *service.BootstrapService
	Cart      *service.CartService
	Resources *service.ResourceService
	CashCount *service.CashCountService
	BulkPrice *service.BulkPriceService
	Accounts  *service.AccountService
	Reports   *service.ReportsService
	Catalog   ports.CatalogAPI

	Metrics *statsd.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// InitServices wires the backend API client, the Redis stores, and the
// services behind the HTTP handlers.
func InitServices(deps ServiceDeps) (*ServiceContainer, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  "posweb",
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init statsd client: %w", err)
	}

	outages, err := initOutageNotifier(cfg.Observability.Notify, logger)
	if err != nil {
		return nil, fmt.Errorf("init outage notifier: %w", err)
	}

	apiOpts := posapi.Options{
		BaseURL:    cfg.Backend.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Backend.Timeout},
		Logger:     logger,
		Metrics:    metrics,
	}
	if outages.Enabled() {
		apiOpts.Outages = outages
	}
	api := posapi.New(apiOpts)

	sessionStore := redisstore.NewSessionStoreWithPrefix(
		deps.RedisClient, "posweb:session:", cfg.Storage.SessionTTL)
	cartStore := redisstore.NewCartStoreWithTTL(deps.RedisClient, cfg.Storage.CartTTL)

	sessions := service.NewSessionService(service.SessionServiceOptions{
		Tokens:   api,
		Sessions: sessionStore,
		Carts:    cartStore,
		Logger:   logger,
		Metrics:  metrics,
	})

	return &ServiceContainer{
		Sessions: sessions,
		Bootstrap: service.NewBootstrapService(service.BootstrapServiceOptions{
			Catalog:  api,
			Sessions: sessions,
			Logger:   logger,
		}),
		Cart: service.NewCartService(service.CartServiceOptions{
			Carts:   cartStore,
			Sales:   api,
			Logger:  logger,
			Metrics: metrics,
		}),
		Resources: service.NewResourceService(service.ResourceServiceOptions{
			API:    api,
			Logger: logger,
		}),
		CashCount: service.NewCashCountService(service.CashCountServiceOptions{
			API:    api,
			Logger: logger,
		}),
		BulkPrice: service.NewBulkPriceService(service.BulkPriceServiceOptions{
			API:    api,
			Logger: logger,
		}),
		Accounts: service.NewAccountService(service.AccountServiceOptions{
			API:    api,
			Logger: logger,
		}),
		Reports: service.NewReportsService(service.ReportsServiceOptions{
			API:    api,
			Logger: logger,
		}),
		Catalog: api,
		Metrics: metrics,
	}, nil
}

// initOutageNotifier builds the Slack-backed outage notifier. With no
// webhook configured it returns a notifier with no sinks, which drops
// everything.
func initOutageNotifier(cfg config.NotifyConfig, logger *slog.Logger) (*outagenotify.Service, error) {
	var sinks []outagenotify.SinkRegistration
	if cfg.SlackWebhookURL != "" {
		slackSink, err := slack.NewClient(slack.Config{
			WebhookURL: cfg.SlackWebhookURL,
			Channel:    cfg.SlackChannel,
		})
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, outagenotify.SinkRegistration{Name: "slack", Sink: slackSink})
	}

	return outagenotify.NewService(outagenotify.Options{
		Logger:   logger,
		Sinks:    sinks,
		Cooldown: cfg.Cooldown,
	}), nil
}

// Close releases service-held resources: refresh timers and the metrics
// connection.
func (c *ServiceContainer) Close() {
	if c == nil {
		return
	}
	if c.Sessions != nil {
		c.Sessions.Close()
	}
	if c.Metrics != nil {
		_ = c.Metrics.Close()
	}
}
