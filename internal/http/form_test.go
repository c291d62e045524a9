package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/minegocio/pos-web/internal/errors"
)

func formRequest(form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestFormInt64(t *testing.T) {
	r := formRequest(url.Values{"product_id": {"42"}})
	v, err := formInt64(r, "product_id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	r = formRequest(url.Values{"product_id": {"abc"}})
	_, err = formInt64(r, "product_id")
	assert.True(t, apperrors.IsValidation(err))

	r = formRequest(url.Values{})
	_, err = formInt64(r, "product_id")
	assert.True(t, apperrors.IsValidation(err), "absent field is invalid")
}

func TestFormInt64List(t *testing.T) {
	r := formRequest(url.Values{"product_ids": {"1", "2", "3"}})
	v, err := formInt64List(r, "product_ids")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, v)

	r = formRequest(url.Values{})
	v, err = formInt64List(r, "product_ids")
	require.NoError(t, err)
	assert.Empty(t, v, "absent checkbox group is an empty selection")

	r = formRequest(url.Values{"product_ids": {"1", "x"}})
	_, err = formInt64List(r, "product_ids")
	assert.True(t, apperrors.IsValidation(err))
}

func TestPathInt64(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/sales/7", nil)
	r.SetPathValue("id", "7")
	v, err := pathInt64(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	r = httptest.NewRequest(http.MethodGet, "/sales/x", nil)
	r.SetPathValue("id", "x")
	_, err = pathInt64(r, "id")
	assert.True(t, apperrors.IsNotFound(err))
}
