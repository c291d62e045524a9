package posapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minegocio/pos-web/internal/domain/model"
	apperrors "github.com/minegocio/pos-web/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL})
}

func TestObtainToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/token/", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "caro", body["username"])

			_ = json.NewEncoder(w).Encode(map[string]string{"access": "a1", "refresh": "r1"})
		})

		pair, err := c.ObtainToken(context.Background(), "caro", "secret")
		require.NoError(t, err)
		assert.Equal(t, "a1", pair.Access)
		assert.Equal(t, "r1", pair.Refresh)
	})

	t.Run("bad credentials become a credentials error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "No active account found"})
		})

		_, err := c.ObtainToken(context.Background(), "caro", "nope")
		assert.True(t, apperrors.IsCredentials(err))
	})

	t.Run("connection failure is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close() // nothing listening anymore
		c := New(Options{BaseURL: srv.URL})

		_, err := c.ObtainToken(context.Background(), "caro", "secret")
		assert.True(t, apperrors.IsUnavailable(err))
	})

	t.Run("incomplete pair is rejected", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "a1"})
		})

		_, err := c.ObtainToken(context.Background(), "caro", "secret")
		assert.True(t, apperrors.IsRemote(err))
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/token/refresh/", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]string{"access": "a2"})
		})

		access, err := c.RefreshToken(context.Background(), "r1")
		require.NoError(t, err)
		assert.Equal(t, "a2", access)
	})

	t.Run("rejected refresh token errors", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := c.RefreshToken(context.Background(), "expired")
		assert.Error(t, err)
	})

	t.Run("malformed response errors", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		_, err := c.RefreshToken(context.Background(), "r1")
		assert.Error(t, err)
	})
}

func TestListPage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("page_size"))
		assert.Equal(t, "cafe", q.Get("name"))
		assert.False(t, q.Has("category"), "empty filters must not reach the wire")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"count":   21,
			"results": []map[string]any{{"id": 11, "name": "Café"}},
		})
	})

	res, err := c.ListPage(context.Background(), "tok", "products", model.PageQuery{
		Page:     2,
		PageSize: 10,
		Filters:  map[string]string{"name": "cafe", "category": ""},
	})
	require.NoError(t, err)
	assert.Equal(t, 21, res.Count)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "Café", res.Results[0]["name"])
}

func TestDelete(t *testing.T) {
	t.Run("204 without body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/providers/4/", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		detail, err := c.Delete(context.Background(), "tok", "providers", 4)
		require.NoError(t, err)
		assert.Empty(t, detail)
	})

	t.Run("200 with detail", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Producto desactivado."})
		})

		detail, err := c.Delete(context.Background(), "tok", "products", 9)
		require.NoError(t, err)
		assert.Equal(t, "Producto desactivado.", detail)
	})

	t.Run("409 classified as conflict", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "tiene ventas asociadas"})
		})

		_, err := c.Delete(context.Background(), "tok", "products", 9)
		assert.True(t, apperrors.IsConflict(err))
	})
}

func TestClassify_Unauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Products(context.Background(), "stale-token")
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestCashCountToday(t *testing.T) {
	t.Run("open day", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/cash-count/", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"expected_amount": "1530.50",
				"history":         []any{},
			})
		})

		today, err := c.CashCountToday(context.Background(), "tok")
		require.NoError(t, err)
		assert.False(t, today.AlreadyClosed)
		assert.Equal(t, "1530.50", today.ExpectedAmount.StringFixed(2))
	})

	t.Run("already closed rides on 409", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"message": "La caja del día de hoy ya fue cerrada.",
				"history": []map[string]any{{"id": 1, "date": "2025-06-01"}},
			})
		})

		today, err := c.CashCountToday(context.Background(), "tok")
		require.NoError(t, err)
		assert.True(t, today.AlreadyClosed)
		require.Len(t, today.History, 1)
	})
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail key", `{"detail":"No encontrado."}`, "No encontrado."},
		{"message key", `{"message":"Ya cerrada."}`, "Ya cerrada."},
		{"error key", `{"error":"Faltan datos."}`, "Faltan datos."},
		{
			"field errors stringified",
			`{"name":["Este campo es requerido."],"sku":["Ya existe."]}`,
			"name: Este campo es requerido.; sku: Ya existe.",
		},
		{"non-json passthrough", `gateway timeout`, "gateway timeout"},
		{"empty body", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorDetail([]byte(tt.body)))
		})
	}
}

func TestRecordSale(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sales/", r.URL.Path)

		var payload model.NewSale
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "30.00", payload.TotalAmount)
		require.Len(t, payload.Details, 1)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 77, "status": "Completada"})
	})

	sale, err := c.RecordSale(context.Background(), "tok", model.NewSale{
		TotalAmount:     "30.00",
		Details:         []model.NewSaleLine{{ProductID: 1, Quantity: 3, UnitPrice: "10.00"}},
		PaymentMethodID: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), sale.ID)
	assert.Equal(t, model.SaleCompleted, sale.Status)
}
