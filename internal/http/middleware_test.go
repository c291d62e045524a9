package httpx

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/minegocio/pos-web/internal/observability/statsd"
)

func TestHealthz(t *testing.T) {
	env := newCashierEnv(t)

	w := env.doAnonymous(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRequireSessionRedirectsAnonymous(t *testing.T) {
	env := newCashierEnv(t)

	for _, target := range []string{"/", "/pos", "/cash-count", "/password"} {
		w := env.doAnonymous(http.MethodGet, target, nil)
		assert.Equal(t, http.StatusSeeOther, w.Code, target)
		assert.Equal(t, "/login", w.Header().Get("Location"), target)
	}
}

func TestRequireSessionRejectsUnknownCookie(t *testing.T) {
	env := newCashierEnv(t)
	env.Session.ID = "nonexistent"

	w := env.do(http.MethodGet, "/pos", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAdmin(t *testing.T) {
	t.Run("cashiers get 403 on admin routes", func(t *testing.T) {
		env := newCashierEnv(t)

		for _, target := range []string{"/dashboard", "/reports", "/bulk-price", "/admin/products"} {
			w := env.do(http.MethodGet, target, nil)
			assert.Equal(t, http.StatusForbidden, w.Code, target)
		}
	})

	t.Run("anonymous users are sent to login", func(t *testing.T) {
		env := newCashierEnv(t)

		w := env.doAnonymous(http.MethodGet, "/dashboard", nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})
}

func TestRecoverMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	handler := Recover(slog.Default())(panicking)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTimingMiddlewareEmitsMetric(t *testing.T) {
	sink := &captureSink{}
	handler := Timing(sink)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pos", nil))

	assert.NotEmpty(t, sink.timings)
}

type captureSink struct {
	counts  []string
	timings []string
}

var _ statsd.Sink = (*captureSink)(nil)

func (c *captureSink) Count(name string, _ int64, _ map[string]string) {
	c.counts = append(c.counts, name)
}

func (c *captureSink) Gauge(string, float64, map[string]string) {}

func (c *captureSink) Timing(name string, _ time.Duration, _ map[string]string) {
	c.timings = append(c.timings, name)
}
