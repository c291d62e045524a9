package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/minegocio/pos-web/internal/domain/auth"
	apperrors "github.com/minegocio/pos-web/internal/errors"
	"github.com/minegocio/pos-web/internal/observability/metrics"
	"github.com/minegocio/pos-web/internal/observability/statsd"
	"github.com/minegocio/pos-web/internal/ports"
)

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Tokens   ports.TokenAPI
	Sessions ports.SessionStore
	Carts    ports.CartStore
	Logger   *slog.Logger
	// Metrics is optional: session lifecycle counters (StatsD-compatible).
	Metrics statsd.Sink
	// Now is optional and exists for tests; defaults to time.Now.
	Now func() time.Time
}

// SessionService owns the session lifecycle: login, logout, and the silent
// refresh loop that keeps the access token alive while the user works.
type SessionService struct {
	tokens   ports.TokenAPI
	sessions ports.SessionStore
	carts    ports.CartStore
	logger   *slog.Logger
	metrics  statsd.Sink
	now      func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

// NewSessionService constructs a SessionService.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &SessionService{
		tokens:   opts.Tokens,
		sessions: opts.Sessions,
		carts:    opts.Carts,
		logger:   logger,
		metrics:  opts.Metrics,
		now:      now,
		timers:   make(map[string]*time.Timer),
	}
}

// Login exchanges credentials for a token pair, persists the session, and
// schedules its silent refresh. Credential rejection and backend
// unavailability surface as distinct error codes so the login page can tell
// the user which one happened.
func (s *SessionService) Login(ctx context.Context, username, password string) (domainauth.Session, error) {
	if username == "" || password == "" {
		return domainauth.Session{}, apperrors.Credentials("Enter a username and password.")
	}

	pair, err := s.tokens.ObtainToken(ctx, username, password)
	if err != nil {
		return domainauth.Session{}, err
	}

	sess, err := domainauth.SessionFromTokens(uuid.New().String(), pair.Access, pair.Refresh)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeRemote,
			"The server issued an unreadable token.")
	}

	if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", saveErr)
	}

	s.scheduleRefresh(sess)
	s.logger.InfoContext(ctx, "user logged in",
		"session_id", sess.ID,
		"username", sess.Claims.Username,
		"role", sess.Claims.Role())
	metrics.EmitSessionEvent(s.metrics, "login")
	return sess, nil
}

// Resolve loads the session behind a cookie value. Any failure means "no
// session"; callers redirect to the login page without distinguishing why.
func (s *SessionService) Resolve(ctx context.Context, sessionID string) (domainauth.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized,
			"Your session is no longer valid.")
	}
	return sess, nil
}

// Logout destroys the session and its cart state and stops the refresh loop.
// It is idempotent: logging out an unknown or already-dead session succeeds.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	s.cancelRefresh(sessionID)

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := s.carts.DeleteCart(ctx, sessionID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged out", "session_id", sessionID)
	metrics.EmitSessionEvent(s.metrics, "logout")
	return nil
}

// Invalidate drops the session after the backend rejected its token. Unlike
// Logout it is called from request paths that already hold an error, so store
// failures are logged rather than returned.
func (s *SessionService) Invalidate(ctx context.Context, sessionID string) {
	if err := s.Logout(ctx, sessionID); err != nil {
		s.logger.WarnContext(ctx, "session invalidation cleanup failed",
			"session_id", sessionID, "error", err)
	}
}

// Refresh exchanges the stored refresh token for a fresh access token,
// persists the updated session, and reschedules. A rejected refresh token
// kills the session.
func (s *SessionService) Refresh(ctx context.Context, sessionID string) (domainauth.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized,
			"Your session is no longer valid.")
	}

	access, err := s.tokens.RefreshToken(ctx, sess.RefreshToken)
	if err != nil {
		metrics.EmitSessionEvent(s.metrics, "refresh_failed")
		s.Invalidate(ctx, sessionID)
		return domainauth.Session{}, fmt.Errorf("refresh token: %w", err)
	}

	refreshed, err := domainauth.SessionFromTokens(sess.ID, access, sess.RefreshToken)
	if err != nil {
		s.Invalidate(ctx, sessionID)
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeRemote,
			"The server issued an unreadable token.")
	}

	if saveErr := s.sessions.Save(ctx, refreshed); saveErr != nil {
		return domainauth.Session{}, fmt.Errorf("save refreshed session: %w", saveErr)
	}

	s.scheduleRefresh(refreshed)
	s.logger.DebugContext(ctx, "access token refreshed", "session_id", sessionID)
	metrics.EmitSessionEvent(s.metrics, "refresh")
	return refreshed, nil
}

// scheduleRefresh arms the silent-refresh timer for a session, replacing any
// timer already armed for the same session so exactly one is ever live.
func (s *SessionService) scheduleRefresh(sess domainauth.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if old, ok := s.timers[sess.ID]; ok {
		old.Stop()
	}

	delay := sess.RefreshAt(s.now()).Sub(s.now())
	if delay < 0 {
		delay = 0
	}
	id := sess.ID
	s.timers[id] = time.AfterFunc(delay, func() { s.fireRefresh(id) })
}

// EnsureRefresh arms the refresh timer for a session that doesn't have one,
// such as a session resumed after a server restart. A session with a live
// timer is left alone.
func (s *SessionService) EnsureRefresh(sess domainauth.Session) {
	s.mu.Lock()
	_, armed := s.timers[sess.ID]
	s.mu.Unlock()
	if !armed {
		s.scheduleRefresh(sess)
	}
}

func (s *SessionService) cancelRefresh(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[sessionID]; ok {
		timer.Stop()
		delete(s.timers, sessionID)
	}
}

func (s *SessionService) fireRefresh(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshCallTimeout)
	defer cancel()

	if _, err := s.Refresh(ctx, sessionID); err != nil {
		s.logger.WarnContext(ctx, "silent refresh failed, session ended",
			"session_id", sessionID, "error", err)
	}
}

// Close stops all refresh timers. Used on shutdown; sessions themselves stay
// in the store and resume refreshing on their next request.
func (s *SessionService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// ActiveTimers reports how many refresh timers are armed.
func (s *SessionService) ActiveTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

const refreshCallTimeout = 10 * time.Second
