package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashCount is an end-of-day cash reconciliation record.
type CashCount struct {
	ID             int64           `json:"id"`
	Date           string          `json:"date"`
	ExpectedAmount decimal.Decimal `json:"expected_amount"`
	CountedAmount  decimal.Decimal `json:"counted_amount"`
	Difference     decimal.Decimal `json:"difference"`
	User           string          `json:"user"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CashCountToday is the backend's view of the current day: the system-expected
// amount plus the reconciliation history. AlreadyClosed is true when the
// backend answered 409 because today's register was already closed.
type CashCountToday struct {
	ExpectedAmount decimal.Decimal `json:"expected_amount"`
	History        []CashCount     `json:"history"`
	AlreadyClosed  bool            `json:"-"`
	Message        string          `json:"message,omitempty"`
}

// NewCashCount is the submission payload. Amounts travel as strings with two
// decimals, matching the backend's decimal fields.
type NewCashCount struct {
	ExpectedAmount string `json:"expected_amount"`
	CountedAmount  string `json:"counted_amount"`
}
