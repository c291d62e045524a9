package posapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/minegocio/pos-web/internal/domain/model"
)

// Dashboard fetches the server-computed dashboard payload.
func (c *Client) Dashboard(ctx context.Context, token string) (model.DashboardReport, error) {
	var out model.DashboardReport
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/reports/dashboard/",
		token:  token,
	}, &out)
	if err != nil {
		return model.DashboardReport{}, fmt.Errorf("dashboard report: %w", err)
	}
	return out, nil
}

// Ranged fetches the report for an arbitrary date range (YYYY-MM-DD bounds).
func (c *Client) Ranged(ctx context.Context, token, from, to string) (model.RangedReport, error) {
	params := url.Values{}
	params.Set("start_date", from)
	params.Set("end_date", to)

	var out model.RangedReport
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/reports/",
		query:  params,
		token:  token,
	}, &out)
	if err != nil {
		return model.RangedReport{}, fmt.Errorf("ranged report %s..%s: %w", from, to, err)
	}
	return out, nil
}

// ExportSales streams the server-generated sales spreadsheet for the range.
// The caller owns the returned reader.
func (c *Client) ExportSales(ctx context.Context, token, from, to string) (io.ReadCloser, error) {
	params := url.Values{}
	params.Set("start_date", from)
	params.Set("end_date", to)

	resp, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/reports/export-sales/",
		query:  params,
		token:  token,
	})
	if err != nil {
		return nil, fmt.Errorf("export sales: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer closeQuietly(resp.Body)
		return nil, fmt.Errorf("export sales: %w", c.classify(resp))
	}
	return resp.Body, nil
}
