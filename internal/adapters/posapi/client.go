package posapi

// Package posapi is the HTTP adapter for the remote POS backend. It is the
// single place that knows the backend's URL layout, envelope shapes, and error
// bodies; everything above works with ports and domain types.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	apperrors "github.com/minegocio/pos-web/internal/errors"
	"github.com/minegocio/pos-web/internal/observability/metrics"
	"github.com/minegocio/pos-web/internal/observability/notify"
	"github.com/minegocio/pos-web/internal/observability/statsd"
)

// OutageNotifier receives backend connectivity failures.
type OutageNotifier interface {
	NotifyOutage(ctx context.Context, event notify.OutageEvent)
}

const defaultTimeout = 15 * time.Second

// Options groups dependencies for Client.
type Options struct {
	// BaseURL is the API root, e.g. "http://127.0.0.1:8000/api".
	BaseURL string
	// HTTPClient is optional; a client with a sane timeout is used when nil.
	HTTPClient *http.Client
	// Logger is optional.
	Logger *slog.Logger
	// Metrics is optional: per-request counters and timings (StatsD-compatible).
	Metrics statsd.Sink
	// Outages is optional: alerted when the backend is unreachable.
	Outages OutageNotifier
}

// Client calls the remote POS API. It is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
	metrics statsd.Sink
	outages OutageNotifier
}

// New constructs a Client.
func New(opts Options) *Client {
	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: defaultTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		httpc:   httpc,
		logger:  logger,
		metrics: opts.Metrics,
		outages: opts.Outages,
	}
}

// request bundles the parameters of one API call.
type request struct {
	method string
	path   string // path under the API root, e.g. "/products/"
	query  url.Values
	token  string // bearer access token; empty for the token endpoints
	body   any    // JSON-encoded when non-nil
}

// doJSON performs the call and decodes a JSON response into out (when out is
// non-nil). Non-2xx responses are classified into the application error
// taxonomy; transport failures become unavailable errors.
func (c *Client) doJSON(ctx context.Context, req request, out any) (err error) {
	start := time.Now()
	defer func() {
		metrics.EmitBackendRequest(c.metrics, metrics.BackendRequest{
			Operation: operationFor(req.path),
			Duration:  time.Since(start),
			Err:       err,
		})
		if c.outages != nil && apperrors.GetCode(err) == apperrors.ErrCodeUnavailable {
			// The request context may already be canceled; detach so the
			// notification can still go out.
			go c.outages.NotifyOutage(context.WithoutCancel(ctx), notify.OutageEvent{
				Component:  operationFor(req.path),
				Error:      err.Error(),
				ErrorClass: string(apperrors.ErrCodeUnavailable),
				OccurredAt: time.Now(),
				Metadata:   map[string]string{"base_url": c.baseURL},
			})
		}
	}()

	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	defer closeQuietly(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err = c.classify(resp)
		return err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		err = apperrors.Wrap(decodeErr, apperrors.ErrCodeRemote, "The server returned an unreadable response.")
		return err
	}
	return nil
}

// operationFor reduces an API path to a stable metric tag: its first segment.
func operationFor(path string) string {
	trimmed := strings.Trim(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i > -1 {
		trimmed = trimmed[:i]
	}
	if trimmed == "" {
		return "root"
	}
	return trimmed
}

func (c *Client) do(ctx context.Context, req request) (*http.Response, error) {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Could not encode the request.")
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Could not build the request.")
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "api request failed",
			"method", req.method, "path", req.path, "error", err)
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "Could not reach the server.")
	}
	return resp, nil
}

// classify maps a non-2xx response to an AppError. 401 always means "session
// invalid" so every call site reports it the same way.
func (c *Client) classify(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	detail := errorDetail(body)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.Unauthorized("Your session is no longer valid.")
	case http.StatusNotFound:
		return apperrors.NotFound(orDefault(detail, "Not found."))
	case http.StatusConflict:
		return apperrors.Conflict(orDefault(detail, "The operation conflicts with the current state."))
	case http.StatusBadRequest:
		return apperrors.Validation(orDefault(detail, "The server rejected the request data."))
	default:
		msg := orDefault(detail, "The server rejected the request.")
		return apperrors.Remote(fmt.Sprintf("%s (HTTP %d)", msg, resp.StatusCode))
	}
}

// detailProbes are tried in order against the decoded error body. Backends in
// the wild use different keys; field-level validation bodies match none and
// fall through to generic stringification.
var detailProbes = []string{"detail", "message", "error"}

// errorDetail extracts a human-readable message from an API error body whose
// shape varies by endpoint and field. Unknown shapes are stringified rather
// than dropped so the user always sees what the server said.
func errorDetail(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return strings.TrimSpace(string(body))
	}

	for _, probe := range detailProbes {
		if v, err := jmespath.Search(probe, decoded); err == nil {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}

	// Field-keyed validation bodies: render each field with its messages.
	if fields, ok := decoded.(map[string]any); ok {
		names := make([]string, 0, len(fields))
		for field := range fields {
			names = append(names, field)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, field := range names {
			parts = append(parts, fmt.Sprintf("%s: %s", field, stringifyValue(fields[field])))
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}
	return stringifyValue(decoded)
}

func stringifyValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, stringifyValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}

func decodeBody(resp *http.Response, out any) error {
	return json.NewDecoder(resp.Body).Decode(out)
}
