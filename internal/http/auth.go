package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/minegocio/pos-web/internal/domain/auth"
	"github.com/minegocio/pos-web/internal/service"
)

// SessionAuth is the slice of the session service the HTTP layer needs.
type SessionAuth interface {
	Login(ctx context.Context, username, password string) (domainauth.Session, error)
	Resolve(ctx context.Context, sessionID string) (domainauth.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Invalidate(ctx context.Context, sessionID string)
	EnsureRefresh(sess domainauth.Session)
}

var _ SessionAuth = (*service.SessionService)(nil)

// sessionFromRequest resolves the session cookie, or nil when the request has
// no valid session.
func sessionFromRequest(r *http.Request, sessions SessionAuth) *domainauth.Session {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	sess, err := sessions.Resolve(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return &sess
}

// setSessionCookie installs the session cookie. HttpOnly keeps the token pair
// server-side; the browser only ever sees the opaque session ID.
func setSessionCookie(w http.ResponseWriter, sessionID, domain string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie.
func clearSessionCookie(w http.ResponseWriter, domain string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
