package posapi

import (
	"context"
	"net/http"

	apperrors "github.com/minegocio/pos-web/internal/errors"
	"github.com/minegocio/pos-web/internal/ports"
)

// ObtainToken exchanges credentials for a bearer token pair via POST /token/.
func (c *Client) ObtainToken(ctx context.Context, username, password string) (ports.TokenPair, error) {
	var pair ports.TokenPair
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/token/",
		body:   map[string]string{"username": username, "password": password},
	}, &pair)
	if err != nil {
		// The token endpoint answers 401 for bad credentials; that is not a
		// session problem, it is a login rejection.
		if apperrors.IsUnauthorized(err) || apperrors.IsValidation(err) {
			return ports.TokenPair{}, apperrors.Credentials("Wrong username or password.")
		}
		return ports.TokenPair{}, err
	}
	if pair.Access == "" || pair.Refresh == "" {
		return ports.TokenPair{}, apperrors.Remote("The server returned an incomplete token response.")
	}
	return pair, nil
}

// RefreshToken exchanges the refresh token for a new access token via
// POST /token/refresh/. Every failure mode (rejected refresh, network error,
// malformed response) is an error; the session layer reacts by logging out.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (string, error) {
	var out struct {
		Access string `json:"access"`
	}
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/token/refresh/",
		body:   map[string]string{"refresh": refresh},
	}, &out)
	if err != nil {
		return "", err
	}
	if out.Access == "" {
		return "", apperrors.Remote("The server returned an empty refreshed token.")
	}
	return out.Access, nil
}
