package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProductStatus mirrors the backend's estado field.
type ProductStatus string

const (
	ProductActive   ProductStatus = "activo"
	ProductInactive ProductStatus = "inactivo"
)

// LowStockThreshold marks products the POS highlights as nearly out.
const LowStockThreshold = 5

// Product is read-only reference data owned by the backend; the client
// re-fetches it on bootstrap and never mutates it locally.
type Product struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"category"`
	ProviderID  *int64          `json:"provider"`
	Status      ProductStatus   `json:"estado"`
}

// IsActive reports whether the product is sellable.
func (p Product) IsActive() bool {
	return strings.EqualFold(string(p.Status), string(ProductActive))
}

// IsLowStock reports whether the product should be highlighted as nearly out.
func (p Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock <= LowStockThreshold
}

// ActiveProducts filters to sellable products only.
func ActiveProducts(products []Product) []Product {
	var out []Product
	for _, p := range products {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}
