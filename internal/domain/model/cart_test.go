package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/minegocio/pos-web/internal/errors"
)

func product(id int64, name string, price string, stock int) Product {
	return Product{
		ID:        id,
		Name:      name,
		SKU:       "SKU-" + name,
		SalePrice: decimal.RequireFromString(price),
		Stock:     stock,
		Status:    ProductActive,
	}
}

func cashMethod(pct string) PaymentMethod {
	return PaymentMethod{
		ID:                   1,
		Name:                 "Efectivo",
		AdjustmentPercentage: decimal.RequireFromString(pct),
		IsActive:             true,
	}
}

func TestCart_Add(t *testing.T) {
	t.Run("new product creates a line", func(t *testing.T) {
		var cart Cart
		require.NoError(t, cart.Add(product(1, "Coffee", "10.00", 5), 1))
		line, ok := cart.Line(1)
		require.True(t, ok)
		assert.Equal(t, 1, line.Quantity)
		assert.Equal(t, "10.00", line.UnitPrice.StringFixed(2))
	})

	t.Run("existing product increments quantity", func(t *testing.T) {
		var cart Cart
		p := product(1, "Coffee", "10.00", 5)
		require.NoError(t, cart.Add(p, 1))
		require.NoError(t, cart.Add(p, 2))
		line, _ := cart.Line(1)
		assert.Equal(t, 3, line.Quantity)
	})

	t.Run("out of stock is rejected", func(t *testing.T) {
		var cart Cart
		err := cart.Add(product(1, "Coffee", "10.00", 0), 1)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.True(t, cart.IsEmpty())
	})

	t.Run("overflow rejects without partial increment", func(t *testing.T) {
		var cart Cart
		p := product(2, "Tea", "5.00", 2)
		require.NoError(t, cart.Add(p, 1))
		require.NoError(t, cart.Add(p, 1))

		err := cart.Add(p, 1)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		line, _ := cart.Line(2)
		assert.Equal(t, 2, line.Quantity, "quantity must be untouched after a rejected add")
	})

	t.Run("adding more than stock on a fresh line is rejected", func(t *testing.T) {
		var cart Cart
		err := cart.Add(product(1, "Coffee", "10.00", 3), 4)
		require.Error(t, err)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("negative qty that empties the line removes it", func(t *testing.T) {
		var cart Cart
		p := product(1, "Coffee", "10.00", 5)
		require.NoError(t, cart.Add(p, 2))
		require.NoError(t, cart.Add(p, -2))
		assert.True(t, cart.IsEmpty())
	})

	t.Run("zero qty is a no-op", func(t *testing.T) {
		var cart Cart
		require.NoError(t, cart.Add(product(1, "Coffee", "10.00", 5), 0))
		assert.True(t, cart.IsEmpty())
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("beyond stock clamps to exactly stock", func(t *testing.T) {
		var cart Cart
		require.NoError(t, cart.Add(product(1, "Coffee", "10.00", 5), 1))

		change, err := cart.SetQuantity(1, 9)
		require.NoError(t, err)
		assert.True(t, change.Clamped)
		assert.Equal(t, 5, change.Quantity)
		line, _ := cart.Line(1)
		assert.Equal(t, 5, line.Quantity, "clamped to stock, never the requested value")
	})

	t.Run("zero or negative removes the line", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			var cart Cart
			require.NoError(t, cart.Add(product(1, "Coffee", "10.00", 5), 2))
			change, err := cart.SetQuantity(1, qty)
			require.NoError(t, err)
			assert.True(t, change.Removed)
			assert.True(t, cart.IsEmpty())
		}
	})

	t.Run("valid quantity applies exactly", func(t *testing.T) {
		var cart Cart
		require.NoError(t, cart.Add(product(1, "Coffee", "10.00", 5), 1))
		change, err := cart.SetQuantity(1, 4)
		require.NoError(t, err)
		assert.False(t, change.Clamped)
		assert.Equal(t, 4, change.Quantity)
	})

	t.Run("unknown product errors", func(t *testing.T) {
		var cart Cart
		_, err := cart.SetQuantity(99, 1)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestCart_Subtotal_AfterMixedOperations(t *testing.T) {
	var cart Cart
	a := product(1, "Coffee", "10.00", 10)
	b := product(2, "Tea", "3.50", 10)

	require.NoError(t, cart.Add(a, 3))
	require.NoError(t, cart.Add(b, 2))
	_, err := cart.SetQuantity(2, 4)
	require.NoError(t, err)
	cart.Remove(1)
	require.NoError(t, cart.Add(a, 1))

	// 1×10.00 + 4×3.50
	assert.Equal(t, "24.00", cart.Subtotal().StringFixed(2))
}

func TestCart_Totals(t *testing.T) {
	t.Run("discounted cash sale with change", func(t *testing.T) {
		// Scenario: A at 10.00, qty 3, 10% discount, 30.00 tendered.
		var cart Cart
		require.NoError(t, cart.Add(product(1, "A", "10.00", 5), 3))
		pm := cashMethod("-10")

		assert.Equal(t, "30.00", cart.Subtotal().StringFixed(2))
		assert.Equal(t, "-3.00", cart.AdjustmentAmount(pm).StringFixed(2))
		assert.Equal(t, "27.00", cart.Total(pm).StringFixed(2))
		assert.Equal(t, "3.00", cart.ChangeDue(pm, decimal.RequireFromString("30.00")).StringFixed(2))
	})

	t.Run("total equals subtotal times one plus adjustment", func(t *testing.T) {
		cases := []struct {
			price, pct, want string
			qty              int
		}{
			{"19.99", "0", "59.97", 3},
			{"19.99", "8.5", "65.07", 3}, // 59.97 * 1.085 = 65.06745 -> 65.07
			{"19.99", "-10", "53.97", 3}, // 59.97 * 0.9 = 53.973 -> 53.97
			{"0.10", "2.5", "0.31", 3},   // 0.30 * 1.025 = 0.3075 -> 0.31
		}
		for _, tc := range cases {
			var cart Cart
			require.NoError(t, cart.Add(product(1, "X", tc.price, 100), tc.qty))
			pm := cashMethod(tc.pct)
			assert.Equal(t, tc.want, cart.Total(pm).StringFixed(2),
				"price=%s pct=%s", tc.price, tc.pct)
		}
	})

	t.Run("change is zero when tendered below total", func(t *testing.T) {
		var cart Cart
		require.NoError(t, cart.Add(product(1, "A", "10.00", 5), 3))
		pm := cashMethod("0")
		assert.True(t, cart.ChangeDue(pm, decimal.RequireFromString("20.00")).IsZero())
	})
}

func TestCart_ClearAndRemove(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.Add(product(1, "A", "1.00", 5), 1))
	require.NoError(t, cart.Add(product(2, "B", "2.00", 5), 1))

	cart.Remove(3) // absent: no-op
	assert.Len(t, cart.Lines, 2)

	cart.Remove(1)
	assert.Len(t, cart.Lines, 1)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Subtotal().IsZero())
}

func TestSearchProducts(t *testing.T) {
	products := []Product{
		product(1, "Café Molido", "10.00", 5),
		product(2, "Té Verde", "5.00", 5),
		{ID: 3, Name: "Yerba", SKU: "YER-500", SalePrice: decimal.New(1, 0), Stock: 1, Status: ProductActive},
	}

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := SearchProducts(products, "caf")
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("matches sku substring", func(t *testing.T) {
		got := SearchProducts(products, "yer-5")
		require.Len(t, got, 1)
		assert.Equal(t, int64(3), got[0].ID)
	})

	t.Run("literal containment only", func(t *testing.T) {
		assert.Empty(t, SearchProducts(products, "molido cafe"))
	})

	t.Run("blank query matches nothing", func(t *testing.T) {
		assert.Empty(t, SearchProducts(products, "   "))
	})
}

func TestBuildNewSale(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.Add(product(1, "A", "10.00", 5), 3))
	require.NoError(t, cart.Add(product(2, "B", "3.50", 5), 2))

	payload := BuildNewSale(&cart, 7)

	assert.Equal(t, "37.00", payload.TotalAmount, "total_amount carries the subtotal; the backend owns the adjusted total")
	assert.Equal(t, int64(7), payload.PaymentMethodID)
	require.Len(t, payload.Details, 2)
	assert.Equal(t, NewSaleLine{ProductID: 1, Quantity: 3, UnitPrice: "10.00"}, payload.Details[0])
}
