package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/minegocio/pos-web/internal/domain/model"
	apperrors "github.com/minegocio/pos-web/internal/errors"
	"github.com/minegocio/pos-web/internal/ports"
)

// CashCountServiceOptions groups dependencies for CashCountService.
type CashCountServiceOptions struct {
	API    ports.CashCountAPI
	Logger *slog.Logger
}

// CashCountService runs the end-of-day register reconciliation.
type CashCountService struct {
	api    ports.CashCountAPI
	logger *slog.Logger
}

// NewCashCountService constructs a CashCountService.
func NewCashCountService(opts CashCountServiceOptions) *CashCountService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CashCountService{
		api:    opts.API,
		logger: logger,
	}
}

// Today loads the current day's expected amount and the reconciliation
// history. When today is already closed the expected amount is absent and the
// view shows the backend's message instead of the closing form.
func (s *CashCountService) Today(ctx context.Context, token string) (model.CashCountToday, error) {
	return s.api.CashCountToday(ctx, token)
}

// Close submits the counted amount against the expected amount. The
// difference shown on the confirmation is counted minus expected, so a
// shortfall is negative.
func (s *CashCountService) Close(
	ctx context.Context,
	token string,
	expected decimal.Decimal,
	counted string,
) (string, decimal.Decimal, error) {
	countedAmount, err := decimal.NewFromString(counted)
	if err != nil {
		return "", decimal.Zero, apperrors.ValidationField("counted_amount", "Enter the counted amount.")
	}
	if countedAmount.IsNegative() {
		return "", decimal.Zero, apperrors.ValidationField("counted_amount", "The counted amount cannot be negative.")
	}

	message, err := s.api.CloseCashCount(ctx, token, model.NewCashCount{
		ExpectedAmount: expected.StringFixed(2),
		CountedAmount:  countedAmount.StringFixed(2),
	})
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("close cash count: %w", err)
	}

	difference := countedAmount.Sub(expected).Round(2)
	s.logger.InfoContext(ctx, "cash count closed",
		"expected", expected.StringFixed(2),
		"counted", countedAmount.StringFixed(2),
		"difference", difference.StringFixed(2))
	return message, difference, nil
}
