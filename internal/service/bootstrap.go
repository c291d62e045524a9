package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/minegocio/pos-web/internal/domain/auth"
	"github.com/minegocio/pos-web/internal/domain/model"
	apperrors "github.com/minegocio/pos-web/internal/errors"
	"github.com/minegocio/pos-web/internal/ports"
)

// AppData is the working set fetched after login: everything the point of
// sale needs, plus the admin sets when the session may use the admin panel.
type AppData struct {
	Products        []model.Product
	PopularProducts []model.Product
	Sales           []model.Sale
	PaymentMethods  []model.PaymentMethod

	// Admin-only sets; empty for cashier sessions.
	Providers           []model.Provider
	Clients             []model.Client
	Categories          []model.Category
	Users               []model.User
	Groups              []model.Group
	AdminPaymentMethods []model.PaymentMethod
}

// BootstrapServiceOptions groups dependencies for BootstrapService.
type BootstrapServiceOptions struct {
	Catalog  ports.CatalogAPI
	Sessions *SessionService
	Logger   *slog.Logger

	// CacheTTL bounds how long a session reuses its cached working set.
	// Zero means DefaultBootstrapTTL.
	CacheTTL time.Duration
	// Now is overridable in tests.
	Now func() time.Time
}

// DefaultBootstrapTTL is how long a session's working set stays cached
// before the backend is consulted again.
const DefaultBootstrapTTL = 15 * time.Second

// BootstrapService loads the post-login working set. All fetches run in
// parallel and the first failure cancels the rest; a 401 from any of them
// invalidates the session. Results are cached per session for a short TTL;
// a token rotation or an explicit Invalidate forces a refetch.
type BootstrapService struct {
	catalog  ports.CatalogAPI
	sessions *SessionService
	logger   *slog.Logger
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	cache map[string]bootstrapEntry
}

type bootstrapEntry struct {
	token   string
	data    *AppData
	expires time.Time
}

// NewBootstrapService constructs a BootstrapService.
func NewBootstrapService(opts BootstrapServiceOptions) *BootstrapService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = DefaultBootstrapTTL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &BootstrapService{
		catalog:  opts.Catalog,
		sessions: opts.Sessions,
		logger:   logger,
		ttl:      ttl,
		now:      now,
		cache:    map[string]bootstrapEntry{},
	}
}

// Load returns the working set for a session, fetching it from the backend
// when the cache has no fresh entry for the session's current token. Callers
// must treat the returned data as read only.
func (s *BootstrapService) Load(ctx context.Context, sess domainauth.Session) (*AppData, error) {
	if data := s.cached(sess); data != nil {
		return data, nil
	}
	data, err := s.fetch(ctx, sess)
	if err != nil {
		return nil, err
	}
	s.store(sess, data)
	return data, nil
}

// Invalidate drops the cached working set for a session. Handlers call it
// after any mutation so the next page load refetches.
func (s *BootstrapService) Invalidate(sessionID string) {
	s.mu.Lock()
	delete(s.cache, sessionID)
	s.mu.Unlock()
}

func (s *BootstrapService) cached(sess domainauth.Session) *AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cache[sess.ID]
	if !ok || entry.token != sess.AccessToken || s.now().After(entry.expires) {
		return nil
	}
	return entry.data
}

func (s *BootstrapService) store(sess domainauth.Session, data *AppData) {
	s.mu.Lock()
	s.cache[sess.ID] = bootstrapEntry{
		token:   sess.AccessToken,
		data:    data,
		expires: s.now().Add(s.ttl),
	}
	s.mu.Unlock()
}

func (s *BootstrapService) fetch(ctx context.Context, sess domainauth.Session) (*AppData, error) {
	data := &AppData{}
	token := sess.AccessToken

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.Products, err = s.catalog.Products(gctx, token)
		return err
	})
	g.Go(func() error {
		popular, err := s.catalog.PopularProducts(gctx, token)
		if err != nil {
			if apperrors.IsUnauthorized(err) {
				return err
			}
			// The ranking endpoint is optional; the idle screen falls back
			// to the head of the product list.
			s.logger.WarnContext(gctx, "popular products unavailable", "error", err)
			return nil
		}
		data.PopularProducts = popular
		return nil
	})
	g.Go(func() error {
		var err error
		data.Sales, err = s.catalog.Sales(gctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		data.PaymentMethods, err = s.catalog.PaymentMethods(gctx, token)
		return err
	})

	if sess.IsAdmin() {
		g.Go(func() error {
			var err error
			data.Providers, err = s.catalog.Providers(gctx, token)
			return err
		})
		g.Go(func() error {
			var err error
			data.Clients, err = s.catalog.Clients(gctx, token)
			return err
		})
		g.Go(func() error {
			var err error
			data.Categories, err = s.catalog.Categories(gctx, token)
			return err
		})
		g.Go(func() error {
			var err error
			data.Users, err = s.catalog.Users(gctx, token)
			return err
		})
		g.Go(func() error {
			var err error
			data.Groups, err = s.catalog.Groups(gctx, token)
			return err
		})
		g.Go(func() error {
			var err error
			data.AdminPaymentMethods, err = s.catalog.AdminPaymentMethods(gctx, token)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		if apperrors.IsUnauthorized(err) {
			s.sessions.Invalidate(ctx, sess.ID)
		}
		return nil, fmt.Errorf("load app data: %w", err)
	}

	if len(data.PopularProducts) == 0 {
		data.PopularProducts = headOf(model.ActiveProducts(data.Products), popularFallbackCount)
	}

	return data, nil
}

// popularFallbackCount caps the idle-screen list when the ranking endpoint
// gave nothing.
const popularFallbackCount = 10

func headOf(products []model.Product, n int) []model.Product {
	if len(products) <= n {
		return products
	}
	return products[:n]
}
