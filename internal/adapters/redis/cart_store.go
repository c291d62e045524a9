package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minegocio/pos-web/internal/ports"
)

// DefaultCartTTL bounds how long an abandoned cart lingers. A cart left
// untouched this long belongs to a shift that ended.
const DefaultCartTTL = 12 * time.Hour

// CartStore persists per-session point-of-sale state in Redis so an
// in-progress cart survives page reloads and server restarts.
type CartStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewCartStore creates a Redis-based cart store.
func NewCartStore(client redis.UniversalClient) *CartStore {
	return NewCartStoreWithTTL(client, DefaultCartTTL)
}

// NewCartStoreWithTTL creates a cart store with a custom abandonment TTL.
func NewCartStoreWithTTL(client redis.UniversalClient, ttl time.Duration) *CartStore {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &CartStore{
		client: client,
		prefix: "posweb:cart:",
		ttl:    ttl,
	}
}

// SaveCart writes the cart state, resetting its TTL on every change.
func (s *CartStore) SaveCart(ctx context.Context, sessionID string, state ports.CartState) error {
	if sessionID == "" {
		return errors.New("session ID cannot be empty")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	return s.client.Set(ctx, s.prefix+sessionID, data, s.ttl).Err()
}

// GetCart loads the cart state for a session. A missing key is an empty cart,
// not an error.
func (s *CartStore) GetCart(ctx context.Context, sessionID string) (ports.CartState, error) {
	if sessionID == "" {
		return ports.CartState{}, nil
	}

	data, err := s.client.Get(ctx, s.prefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.CartState{}, nil
		}
		return ports.CartState{}, fmt.Errorf("redis get: %w", err)
	}

	var state ports.CartState
	if unmarshalErr := json.Unmarshal([]byte(data), &state); unmarshalErr != nil {
		return ports.CartState{}, fmt.Errorf("unmarshal cart: %w", unmarshalErr)
	}
	return state, nil
}

func (s *CartStore) DeleteCart(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	return s.client.Del(ctx, s.prefix+sessionID).Err()
}
