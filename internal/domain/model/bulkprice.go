package model

// BulkPriceTarget selects which price fields a bulk update touches.
type BulkPriceTarget string

const (
	BulkPriceCost BulkPriceTarget = "cost"
	BulkPriceSale BulkPriceTarget = "sale"
	BulkPriceBoth BulkPriceTarget = "both"
)

// Valid reports whether the target is one the backend accepts.
func (t BulkPriceTarget) Valid() bool {
	switch t {
	case BulkPriceCost, BulkPriceSale, BulkPriceBoth:
		return true
	default:
		return false
	}
}

// BulkPriceUpdate applies a percentage change to the selected products'
// prices. Percentage travels as a string to match the backend's decimal
// handling; negative values lower prices.
type BulkPriceUpdate struct {
	ProductIDs   []int64         `json:"product_ids"`
	Percentage   string          `json:"percentage"`
	UpdateTarget BulkPriceTarget `json:"update_target"`
}
