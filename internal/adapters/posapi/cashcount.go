package posapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/minegocio/pos-web/internal/domain/model"
	apperrors "github.com/minegocio/pos-web/internal/errors"
)

// CashCountToday fetches the day's expected amount and the reconciliation
// history. A 409 means today's register was already closed; the history still
// rides in the conflict body, so that outcome is data rather than an error.
func (c *Client) CashCountToday(ctx context.Context, token string) (model.CashCountToday, error) {
	resp, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/cash-count/",
		token:  token,
	})
	if err != nil {
		return model.CashCountToday{}, fmt.Errorf("cash count: %w", err)
	}
	defer closeQuietly(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusConflict:
		var out model.CashCountToday
		if decodeErr := decodeBody(resp, &out); decodeErr != nil {
			return model.CashCountToday{}, apperrors.Wrap(
				decodeErr, apperrors.ErrCodeRemote, "The server returned an unreadable cash count.")
		}
		out.AlreadyClosed = resp.StatusCode == http.StatusConflict
		return out, nil
	default:
		return model.CashCountToday{}, fmt.Errorf("cash count: %w", c.classify(resp))
	}
}

// CloseCashCount records the day's reconciliation via POST /cash-count/.
func (c *Client) CloseCashCount(ctx context.Context, token string, body model.NewCashCount) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/cash-count/",
		token:  token,
		body:   body,
	}, &out)
	if err != nil {
		return "", fmt.Errorf("close cash count: %w", err)
	}
	return out.Message, nil
}
