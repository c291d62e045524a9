package posapi

import (
	"context"
	"net/http"

	"github.com/minegocio/pos-web/internal/domain/model"
)

// listOf fetches an unpaginated collection endpoint. The bootstrap endpoints
// return bare arrays rather than the paginated envelope.
func listOf[T any](ctx context.Context, c *Client, token, path string) ([]T, error) {
	var out []T
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: path, token: token}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Products fetches the product reference list.
func (c *Client) Products(ctx context.Context, token string) ([]model.Product, error) {
	return listOf[model.Product](ctx, c, token, "/products/")
}

// PopularProducts fetches the POS idle-screen ranking.
func (c *Client) PopularProducts(ctx context.Context, token string) ([]model.Product, error) {
	return listOf[model.Product](ctx, c, token, "/products/popular_for_pos/")
}

// Sales fetches the sales collection.
func (c *Client) Sales(ctx context.Context, token string) ([]model.Sale, error) {
	return listOf[model.Sale](ctx, c, token, "/sales/")
}

// PaymentMethods fetches the active payment methods visible to the POS.
func (c *Client) PaymentMethods(ctx context.Context, token string) ([]model.PaymentMethod, error) {
	return listOf[model.PaymentMethod](ctx, c, token, "/payment-methods/")
}

// Providers fetches the provider list (admin only).
func (c *Client) Providers(ctx context.Context, token string) ([]model.Provider, error) {
	return listOf[model.Provider](ctx, c, token, "/providers/")
}

// Clients fetches the client list (admin only).
func (c *Client) Clients(ctx context.Context, token string) ([]model.Client, error) {
	return listOf[model.Client](ctx, c, token, "/clients/")
}

// Categories fetches the category list (admin only).
func (c *Client) Categories(ctx context.Context, token string) ([]model.Category, error) {
	return listOf[model.Category](ctx, c, token, "/categories/")
}

// Users fetches the user list (admin only).
func (c *Client) Users(ctx context.Context, token string) ([]model.User, error) {
	return listOf[model.User](ctx, c, token, "/users/")
}

// Groups fetches the permission groups (admin only).
func (c *Client) Groups(ctx context.Context, token string) ([]model.Group, error) {
	return listOf[model.Group](ctx, c, token, "/groups/")
}

// AdminPaymentMethods fetches every payment method, active or not (admin only).
func (c *Client) AdminPaymentMethods(ctx context.Context, token string) ([]model.PaymentMethod, error) {
	return listOf[model.PaymentMethod](ctx, c, token, "/admin/payment-methods/")
}
