package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims is the JWT payload shape the backend issues. Group memberships
// ride in a custom claim next to the registered ones.
type tokenClaims struct {
	Username string   `json:"username"`
	Groups   []string `json:"groups"`
	jwt.RegisteredClaims
}

// DecodeClaims extracts identity claims from an access token without verifying
// the signature. Verification belongs to the backend; the client only needs
// the payload for display, role mapping, and refresh scheduling. A malformed
// token is an error and callers treat it as "no session".
func DecodeClaims(accessToken string) (Claims, error) {
	var tc tokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, &tc); err != nil {
		return Claims{}, fmt.Errorf("decode access token: %w", err)
	}

	claims := Claims{
		Username: tc.Username,
		Groups:   tc.Groups,
	}
	if tc.ExpiresAt != nil {
		claims.ExpiresAt = tc.ExpiresAt.Time
	}
	if tc.Username == "" {
		if sub := tc.Subject; sub != "" {
			claims.Username = sub
		}
	}
	return claims, nil
}

// SessionFromTokens builds a Session from a token pair, decoding claims from
// the access token.
func SessionFromTokens(id, access, refresh string) (Session, error) {
	claims, err := DecodeClaims(access)
	if err != nil {
		return Session{}, err
	}
	if claims.ExpiresAt.IsZero() {
		claims.ExpiresAt = time.Now().Add(defaultTokenLife)
	}
	return Session{
		ID:           id,
		AccessToken:  access,
		RefreshToken: refresh,
		Claims:       claims,
	}, nil
}

// defaultTokenLife covers tokens that omit an exp claim so the refresh loop
// still has a schedule to work with.
const defaultTokenLife = 5 * time.Minute
