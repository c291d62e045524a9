package redis

// Package redis provides Redis-based adapters for the pos-web server: the
// session store holding bearer token pairs and the cart store holding
// in-progress point-of-sale state.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/minegocio/pos-web/internal/domain/auth"
)

// DefaultSessionTTL bounds how long an idle session survives. It tracks the
// backend's refresh-token lifetime; a session whose refresh token has expired
// is useless anyway.
const DefaultSessionTTL = 24 * time.Hour

// SessionStore persists sessions in Redis. Only the token pair is stored;
// identity claims are re-derived from the access token on every load so they
// can never drift from the token that authorizes the calls.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewSessionStore creates a Redis-based session store.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "posweb:session:",
		ttl:    DefaultSessionTTL,
	}
}

// NewSessionStoreWithPrefix creates a Redis session store with a custom key
// prefix and TTL. A non-positive ttl falls back to DefaultSessionTTL.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Save writes the session, resetting its TTL. Called on login and again on
// every silent refresh, so active sessions keep sliding forward.
func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return s.client.Set(ctx, s.prefix+sess.ID, data, s.ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	data, err := s.client.Get(ctx, s.prefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, ErrNotFound
		}
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		return domainauth.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}

	claims, claimsErr := domainauth.DecodeClaims(sess.AccessToken)
	if claimsErr != nil {
		// An undecodable token can never authorize anything; drop the record.
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup bad session: %w", deleteErr)
		}
		return domainauth.Session{}, ErrNotFound
	}
	sess.Claims = claims

	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil // Nothing to delete
	}

	return s.client.Del(ctx, s.prefix+id).Err()
}

// ErrNotFound is returned when a session is not found.
type notFoundError struct{}

func (notFoundError) Error() string { return "session not found" }

var ErrNotFound error = notFoundError{}
