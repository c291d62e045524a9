package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of transport/adapter concerns except for decoding the
// backend's JWT access token payload.

import (
	"slices"
	"time"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

// AdminGroup is the backend group whose members get the admin panel.
const AdminGroup = "Administradores"

// Claims are the identity fields decoded from the access token payload.
// They are always re-derived from the token, never persisted directly.
type Claims struct {
	Username  string
	Groups    []string
	ExpiresAt time.Time
}

// Role maps the group memberships to an application role.
func (c Claims) Role() Role {
	if slices.Contains(c.Groups, AdminGroup) {
		return RoleAdmin
	}
	return RoleCashier
}

// Session is the server-side record persisted for an authenticated user: the
// bearer token pair plus the claims decoded from the access token. It is
// created on login, replaced wholesale on refresh, and destroyed on logout or
// refresh failure.
type Session struct {
	ID           string `json:"id"`
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
	Claims       Claims `json:"-"`
}

// IsAdmin reports whether the session may use the admin panel.
func (s Session) IsAdmin() bool { return s.Claims.Role() == RoleAdmin }

// RefreshAt returns when the silent refresh should fire: sixty seconds before
// the access token expires, floored at now for tokens already past that point.
func (s Session) RefreshAt(now time.Time) time.Time {
	at := s.Claims.ExpiresAt.Add(-refreshLead)
	if at.Before(now) {
		return now
	}
	return at
}

const refreshLead = 60 * time.Second
