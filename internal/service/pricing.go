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

// BulkPriceServiceOptions groups dependencies for BulkPriceService.
type BulkPriceServiceOptions struct {
	API    ports.PricingAPI
	Logger *slog.Logger
}

// BulkPriceService applies percentage price changes to a selection of
// products in one backend call.
type BulkPriceService struct {
	api    ports.PricingAPI
	logger *slog.Logger
}

// NewBulkPriceService constructs a BulkPriceService.
func NewBulkPriceService(opts BulkPriceServiceOptions) *BulkPriceService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &BulkPriceService{
		api:    opts.API,
		logger: logger,
	}
}

// Apply validates the selection and sends the update. A negative percentage
// lowers prices; -100 or below would zero them out and is rejected.
func (s *BulkPriceService) Apply(
	ctx context.Context,
	token string,
	productIDs []int64,
	percentage string,
	target model.BulkPriceTarget,
) (string, error) {
	if len(productIDs) == 0 {
		return "", apperrors.Validation("Select at least one product.")
	}
	if !target.Valid() {
		return "", apperrors.ValidationField("update_target", "Choose which price to update.")
	}
	pct, err := decimal.NewFromString(percentage)
	if err != nil {
		return "", apperrors.ValidationField("percentage", "Enter a percentage.")
	}
	if pct.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return "", apperrors.ValidationField("percentage", "The percentage must be greater than -100.")
	}

	message, err := s.api.BulkPriceUpdate(ctx, token, model.BulkPriceUpdate{
		ProductIDs:   productIDs,
		Percentage:   pct.String(),
		UpdateTarget: target,
	})
	if err != nil {
		return "", fmt.Errorf("bulk price update: %w", err)
	}

	s.logger.InfoContext(ctx, "bulk price update applied",
		"products", len(productIDs),
		"percentage", pct.String(),
		"target", string(target))
	return message, nil
}
