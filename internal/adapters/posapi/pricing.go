package posapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/minegocio/pos-web/internal/domain/model"
)

// BulkPriceUpdate applies a percentage price change via POST /bulk-price-update/.
func (c *Client) BulkPriceUpdate(ctx context.Context, token string, body model.BulkPriceUpdate) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/bulk-price-update/",
		token:  token,
		body:   body,
	}, &out)
	if err != nil {
		return "", fmt.Errorf("bulk price update: %w", err)
	}
	return out.Message, nil
}

// SetUserPassword sets another user's password (admin only) via
// POST /users/{id}/set_password/.
func (c *Client) SetUserPassword(ctx context.Context, token string, userID int64, password string) error {
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/users/%d/set_password/", userID),
		token:  token,
		body:   map[string]string{"password": password},
	}, nil)
	if err != nil {
		return fmt.Errorf("set password for user %d: %w", userID, err)
	}
	return nil
}

// ChangeOwnPassword changes the authenticated user's password via
// POST /users/change-password/.
func (c *Client) ChangeOwnPassword(ctx context.Context, token, current, next string) error {
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/users/change-password/",
		token:  token,
		body:   map[string]string{"old_password": current, "new_password": next},
	}, nil)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}
