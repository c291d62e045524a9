package httpx

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/minegocio/pos-web/internal/errors"
	"github.com/minegocio/pos-web/internal/ports"
)

func sessionCookieFrom(t *testing.T, header http.Header) *http.Cookie {
	t.Helper()
	resp := http.Response{Header: header}
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	return nil
}

func TestLoginPage(t *testing.T) {
	env := newCashierEnv(t)

	t.Run("renders the form for anonymous visitors", func(t *testing.T) {
		w := env.doAnonymous(http.MethodGet, "/login", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Iniciar sesión")
		assert.Contains(t, w.Body.String(), `name="username"`)
	})

	t.Run("sends authenticated users to their landing page", func(t *testing.T) {
		w := env.do(http.MethodGet, "/login", nil)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

func TestLoginSubmit(t *testing.T) {
	t.Run("success sets the cookie and redirects home", func(t *testing.T) {
		env := newCashierEnv(t)

		w := env.doAnonymous(http.MethodPost, "/login", url.Values{
			"username": {"caro"},
			"password": {"secret"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		cookie := sessionCookieFrom(t, w.Header())
		require.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("bad credentials re-render the form with the message", func(t *testing.T) {
		env := newCashierEnv(t)
		env.Tokens.ObtainFunc = func(context.Context, string, string) (ports.TokenPair, error) {
			return ports.TokenPair{}, apperrors.Credentials("Usuario o contraseña incorrectos.")
		}

		w := env.doAnonymous(http.MethodPost, "/login", url.Values{
			"username": {"caro"},
			"password": {"wrong"},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Usuario o contraseña incorrectos.")
		assert.Contains(t, w.Body.String(), `value="caro"`)
		assert.Nil(t, sessionCookieFrom(t, w.Header()))
	})

	t.Run("backend down renders an unavailable message", func(t *testing.T) {
		env := newCashierEnv(t)
		env.Tokens.ObtainFunc = func(context.Context, string, string) (ports.TokenPair, error) {
			return ports.TokenPair{}, apperrors.Unavailable("No se pudo conectar con el servidor.")
		}

		w := env.doAnonymous(http.MethodPost, "/login", url.Values{
			"username": {"caro"},
			"password": {"secret"},
		})

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "No se pudo conectar con el servidor.")
	})
}

func TestLogout(t *testing.T) {
	env := newCashierEnv(t)

	w := env.do(http.MethodPost, "/logout", url.Values{})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookie := sessionCookieFrom(t, w.Header())
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)

	// The session is gone: the old cookie no longer authenticates.
	again := env.do(http.MethodGet, "/pos", nil)
	assert.Equal(t, http.StatusSeeOther, again.Code)
	assert.Equal(t, "/login", again.Header().Get("Location"))
}

func TestHome(t *testing.T) {
	t.Run("cashiers land on the point of sale", func(t *testing.T) {
		env := newCashierEnv(t)

		w := env.do(http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/pos", w.Header().Get("Location"))
	})

	t.Run("admins land on the dashboard", func(t *testing.T) {
		env := newAdminEnv(t)

		w := env.do(http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	})
}
