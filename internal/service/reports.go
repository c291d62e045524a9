package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/minegocio/pos-web/internal/domain/model"
	apperrors "github.com/minegocio/pos-web/internal/errors"
	"github.com/minegocio/pos-web/internal/ports"
)

// reportDateLayout is the wire format for report date ranges.
const reportDateLayout = "2006-01-02"

// ReportsServiceOptions groups dependencies for ReportsService.
type ReportsServiceOptions struct {
	API    ports.ReportsAPI
	Logger *slog.Logger
}

// ReportsService fetches the dashboard and ranged reports the backend
// computes. The client displays figures; it never derives them.
type ReportsService struct {
	api    ports.ReportsAPI
	logger *slog.Logger
}

// NewReportsService constructs a ReportsService.
func NewReportsService(opts ReportsServiceOptions) *ReportsService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportsService{
		api:    opts.API,
		logger: logger,
	}
}

// Dashboard loads the day's KPIs, low-stock list, and per-method totals.
func (s *ReportsService) Dashboard(ctx context.Context, token string) (model.DashboardReport, error) {
	return s.api.Dashboard(ctx, token)
}

func checkRange(from, to string) error {
	start, err := time.Parse(reportDateLayout, from)
	if err != nil {
		return apperrors.ValidationField("start_date", "Enter a valid start date.")
	}
	end, err := time.Parse(reportDateLayout, to)
	if err != nil {
		return apperrors.ValidationField("end_date", "Enter a valid end date.")
	}
	if end.Before(start) {
		return apperrors.ValidationField("end_date", "The end date is before the start date.")
	}
	return nil
}

// Ranged loads the sales report for an inclusive date range.
func (s *ReportsService) Ranged(ctx context.Context, token, from, to string) (model.RangedReport, error) {
	if err := checkRange(from, to); err != nil {
		return model.RangedReport{}, err
	}
	return s.api.Ranged(ctx, token, from, to)
}

// ExportSales streams the backend-produced sales spreadsheet for the range.
// The caller must close the reader.
func (s *ReportsService) ExportSales(ctx context.Context, token, from, to string) (io.ReadCloser, error) {
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	rc, err := s.api.ExportSales(ctx, token, from, to)
	if err != nil {
		return nil, fmt.Errorf("export sales: %w", err)
	}
	s.logger.InfoContext(ctx, "sales export requested", "from", from, "to", to)
	return rc, nil
}
