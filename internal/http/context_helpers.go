package httpx

import (
	"context"

	domainauth "github.com/minegocio/pos-web/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across
// packages. Centralized here so all handlers and middleware use the same key.
type sessionKey struct{}

type requestIDKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext retrieves the session from the request context, or nil
// when the request is unauthenticated.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok {
		return s
	}
	return nil
}

// SetRequestIDInContext returns a child context carrying the request ID.
func SetRequestIDInContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
