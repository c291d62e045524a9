package redis

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minegocio/pos-web/internal/domain/model"
	"github.com/minegocio/pos-web/internal/ports"
)

func testCartState() ports.CartState {
	return ports.CartState{
		Cart: model.Cart{
			Lines: []model.CartLine{
				{
					ProductID: 7,
					Name:      "Café molido",
					SKU:       "CAF-001",
					UnitPrice: decimal.RequireFromString("10.00"),
					Quantity:  3,
					Stock:     12,
				},
			},
		},
		PaymentMethodID: 2,
		CashReceived:    "50.00",
	}
}

func TestCartStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCartStore(client)
	ctx := context.Background()

	require.NoError(t, store.SaveCart(ctx, "sess-1", testCartState()))

	state, err := store.GetCart(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, state.Cart.Lines, 1)
	assert.Equal(t, int64(7), state.Cart.Lines[0].ProductID)
	assert.Equal(t, 3, state.Cart.Lines[0].Quantity)
	assert.True(t, state.Cart.Lines[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, int64(2), state.PaymentMethodID)
	assert.Equal(t, "50.00", state.CashReceived)

	exists := client.Exists(ctx, "posweb:cart:sess-1").Val()
	assert.Equal(t, int64(1), exists, "cart keys live in the posweb namespace")
}

func TestCartStore_MissingIsEmpty(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCartStore(client)

	state, err := store.GetCart(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.True(t, state.Cart.IsEmpty())
}

func TestCartStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCartStore(client)
	ctx := context.Background()

	require.NoError(t, store.SaveCart(ctx, "sess-del", testCartState()))
	require.NoError(t, store.DeleteCart(ctx, "sess-del"))

	state, err := store.GetCart(ctx, "sess-del")
	require.NoError(t, err)
	assert.True(t, state.Cart.IsEmpty())
}

func TestCartStore_SaveEmptyID(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCartStore(client)

	err := store.SaveCart(context.Background(), "", testCartState())
	require.Error(t, err)
}
