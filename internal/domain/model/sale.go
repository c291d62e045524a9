package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus mirrors the backend's sale states.
type SaleStatus string

const (
	SaleCompleted SaleStatus = "Completada"
	SaleCanceled  SaleStatus = "Cancelada"
)

// Sale is a recorded sale as returned by the backend. TotalAmount is the
// subtotal before the payment-method adjustment; FinalAmount is the backend's
// authoritative adjusted total.
type Sale struct {
	ID              int64           `json:"id"`
	DateTime        time.Time       `json:"date_time"`
	User            string          `json:"user"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	FinalAmount     decimal.Decimal `json:"final_amount"`
	PaymentMethodID *int64          `json:"payment_method"`
	Status          SaleStatus      `json:"status"`
	Details         []SaleDetail    `json:"details"`
}

// SaleDetail is one product line within a recorded sale.
type SaleDetail struct {
	ProductID int64           `json:"product_id"`
	Product   string          `json:"product_name,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// NewSaleLine is one cart line as submitted to the backend.
type NewSaleLine struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// NewSale is the sale-recording payload. TotalAmount carries the subtotal;
// the backend applies the payment-method adjustment and owns the final total.
// Amounts travel as strings with two decimals, matching the backend's decimal
// fields.
type NewSale struct {
	TotalAmount     string        `json:"total_amount"`
	Details         []NewSaleLine `json:"details"`
	PaymentMethodID int64         `json:"payment_method_id"`
}

// BuildNewSale converts the cart into the wire payload for POST /sales/.
func BuildNewSale(cart *Cart, paymentMethodID int64) NewSale {
	details := make([]NewSaleLine, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		details = append(details, NewSaleLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
		})
	}
	return NewSale{
		TotalAmount:     cart.Subtotal().StringFixed(2),
		Details:         details,
		PaymentMethodID: paymentMethodID,
	}
}
