package posapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/minegocio/pos-web/internal/domain/model"
)

// ListPage fetches one page of a resource collection through the shared
// paginated envelope: GET /{resource}/?page=&page_size=&<filters>.
func (c *Client) ListPage(
	ctx context.Context,
	token, resource string,
	q model.PageQuery,
) (model.PageResult[map[string]any], error) {
	q = q.Normalized()

	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("page_size", strconv.Itoa(q.PageSize))
	for k, v := range q.Filters {
		if v != "" {
			params.Set(k, v)
		}
	}

	var out model.PageResult[map[string]any]
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/" + resource + "/",
		query:  params,
		token:  token,
	}, &out)
	if err != nil {
		return model.PageResult[map[string]any]{}, fmt.Errorf("list %s: %w", resource, err)
	}
	return out, nil
}

// Create posts a new resource row.
func (c *Client) Create(ctx context.Context, token, resource string, body map[string]any) error {
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/" + resource + "/",
		token:  token,
		body:   body,
	}, nil)
	if err != nil {
		return fmt.Errorf("create %s: %w", resource, err)
	}
	return nil
}

// Update replaces a resource row.
func (c *Client) Update(ctx context.Context, token, resource string, id int64, body map[string]any) error {
	err := c.doJSON(ctx, request{
		method: http.MethodPut,
		path:   fmt.Sprintf("/%s/%d/", resource, id),
		token:  token,
		body:   body,
	}, nil)
	if err != nil {
		return fmt.Errorf("update %s %d: %w", resource, id, err)
	}
	return nil
}

// Delete removes a resource row. The backend answers either 204 without a body
// or 200 with {detail}; both count as success and the detail, when present, is
// returned for display.
func (c *Client) Delete(ctx context.Context, token, resource string, id int64) (string, error) {
	resp, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/%s/%d/", resource, id),
		token:  token,
	})
	if err != nil {
		return "", fmt.Errorf("delete %s %d: %w", resource, id, err)
	}
	defer closeQuietly(resp.Body)

	switch resp.StatusCode {
	case http.StatusNoContent:
		return "", nil
	case http.StatusOK:
		var out struct {
			Detail string `json:"detail"`
		}
		// A 200 without a parseable body is still a successful delete.
		_ = decodeBody(resp, &out)
		return out.Detail, nil
	default:
		return "", fmt.Errorf("delete %s %d: %w", resource, id, c.classify(resp))
	}
}
