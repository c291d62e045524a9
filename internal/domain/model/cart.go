package model

import (
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/minegocio/pos-web/internal/errors"
)

// CartLine is a single product entry in the current sale. Quantity is always a
// positive integer no greater than the stock known at the time the product was
// last fetched; a line that would drop to zero or below is removed instead.
type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	// Stock is the product stock as of the last bootstrap fetch. The backend
	// remains the authority; this bound only prevents obviously invalid input.
	Stock int `json:"stock"`
}

// LineTotal returns unit price times quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the in-memory line items of the sale in progress. Lines keep
// insertion order. Cart is not safe for concurrent use; callers serialize
// access per session.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// QuantityChange reports the outcome of a quantity edit.
type QuantityChange struct {
	// Clamped is true when the requested quantity exceeded known stock and the
	// line was set to exactly the stock bound.
	Clamped bool
	// Removed is true when the edit removed the line from the cart.
	Removed bool
	// Quantity is the resulting line quantity (0 when removed).
	Quantity int
}

// Add puts qty units of product into the cart. Products without stock are
// rejected. When the product is already present the existing quantity is
// incremented; if the result would exceed the known stock the whole operation
// is rejected and no partial increment is applied. A resulting quantity of
// zero or less removes the line.
func (c *Cart) Add(p Product, qty int) error {
	if qty == 0 {
		return nil
	}
	if p.Stock <= 0 {
		return apperrors.Validationf("%q is out of stock", p.Name)
	}

	idx := c.indexOf(p.ID)
	if idx < 0 {
		if qty < 0 {
			return nil
		}
		if qty > p.Stock {
			return apperrors.Validationf(
				"cannot add %d units of %q: only %d in stock", qty, p.Name, p.Stock)
		}
		c.Lines = append(c.Lines, CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
			UnitPrice: p.SalePrice,
			Quantity:  qty,
			Stock:     p.Stock,
		})
		return nil
	}

	next := c.Lines[idx].Quantity + qty
	if next <= 0 {
		c.removeAt(idx)
		return nil
	}
	if next > p.Stock {
		overflow := next - p.Stock
		return apperrors.Validationf(
			"cannot add %d more of %q: %d over the %d in stock", qty, p.Name, overflow, p.Stock)
	}
	c.Lines[idx].Quantity = next
	c.Lines[idx].Stock = p.Stock
	return nil
}

// SetQuantity replaces the quantity of an existing line. Unlike Add, a request
// beyond the known stock is clamped to exactly the stock (a partial update).
// A negative or zero quantity removes the line.
func (c *Cart) SetQuantity(productID int64, qty int) (QuantityChange, error) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return QuantityChange{}, apperrors.NotFoundf("product %d is not in the cart", productID)
	}

	if qty <= 0 {
		c.removeAt(idx)
		return QuantityChange{Removed: true}, nil
	}

	line := &c.Lines[idx]
	if qty > line.Stock {
		line.Quantity = line.Stock
		return QuantityChange{Clamped: true, Quantity: line.Stock}, nil
	}
	line.Quantity = qty
	return QuantityChange{Quantity: qty}, nil
}

// Remove deletes the line for productID. Removing an absent product is a no-op.
func (c *Cart) Remove(productID int64) {
	if idx := c.indexOf(productID); idx >= 0 {
		c.removeAt(idx)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Line returns the line for productID, if present.
func (c *Cart) Line(productID int64) (CartLine, bool) {
	if idx := c.indexOf(productID); idx >= 0 {
		return c.Lines[idx], true
	}
	return CartLine{}, false
}

// Subtotal is the sum of every line total, before any payment-method
// adjustment.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.Lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

// AdjustmentAmount is the surcharge (positive) or discount (negative) the
// selected payment method applies to the subtotal.
func (c *Cart) AdjustmentAmount(pm PaymentMethod) decimal.Decimal {
	return c.Subtotal().Mul(pm.AdjustmentPercentage).Div(decimal.NewFromInt(100)).Round(2)
}

// Total is subtotal plus the payment-method adjustment, rounded to cents.
func (c *Cart) Total(pm PaymentMethod) decimal.Decimal {
	return c.Subtotal().Add(c.AdjustmentAmount(pm)).Round(2)
}

// ChangeDue is the cash to hand back: max(0, received - total). It is only
// meaningful for payment methods that require a tendered amount.
func (c *Cart) ChangeDue(pm PaymentMethod, cashReceived decimal.Decimal) decimal.Decimal {
	change := cashReceived.Sub(c.Total(pm))
	if change.IsNegative() {
		return decimal.Zero
	}
	return change.Round(2)
}

func (c *Cart) indexOf(productID int64) int {
	for i, l := range c.Lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(idx int) {
	c.Lines = append(c.Lines[:idx], c.Lines[idx+1:]...)
}

// SearchProducts filters products by a case-insensitive substring match on
// name or SKU. Literal containment only; no tokenizing or fuzzy matching.
func SearchProducts(products []Product, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.SKU), q) {
			out = append(out, p)
		}
	}
	return out
}
