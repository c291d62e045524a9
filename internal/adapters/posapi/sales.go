package posapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/minegocio/pos-web/internal/domain/model"
)

// RecordSale submits a completed sale via POST /sales/. The backend validates
// stock and owns the final total; the returned record is its authoritative
// view of the sale.
func (c *Client) RecordSale(ctx context.Context, token string, sale model.NewSale) (model.Sale, error) {
	var out model.Sale
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/sales/",
		token:  token,
		body:   sale,
	}, &out)
	if err != nil {
		return model.Sale{}, fmt.Errorf("record sale: %w", err)
	}
	return out, nil
}

// CancelSale voids a recorded sale via POST /sales/{id}/cancel/.
func (c *Client) CancelSale(ctx context.Context, token string, saleID int64) error {
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/sales/%d/cancel/", saleID),
		token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("cancel sale %d: %w", saleID, err)
	}
	return nil
}
