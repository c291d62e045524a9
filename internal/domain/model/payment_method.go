package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentMethod is read-only reference data. AdjustmentPercentage applies to
// the cart subtotal: negative is a discount, positive a surcharge.
type PaymentMethod struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	AdjustmentPercentage decimal.Decimal `json:"adjustment_percentage"`
	IsActive             bool            `json:"is_active"`
	// RequiresTenderAmount marks methods where the cashier enters the amount
	// received and the POS shows change due. Older backends do not send this
	// field; RequiresTender falls back to name matching for those.
	RequiresTenderAmount *bool `json:"requires_tender_amount,omitempty"`
}

// RequiresTender reports whether the POS should ask for a tendered amount and
// display change. The explicit flag wins when the backend provides it; the
// legacy name match ("cash"/"efectivo", case-insensitive) covers backends that
// predate the flag.
func (pm PaymentMethod) RequiresTender() bool {
	if pm.RequiresTenderAmount != nil {
		return *pm.RequiresTenderAmount
	}
	name := strings.ToLower(pm.Name)
	return strings.Contains(name, "efectivo") || strings.Contains(name, "cash")
}

// FindPaymentMethod returns the method with the given ID.
func FindPaymentMethod(methods []PaymentMethod, id int64) (PaymentMethod, bool) {
	for _, m := range methods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}
