package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/minegocio/pos-web/internal/errors"
	mocksauth "github.com/minegocio/pos-web/internal/mocks/auth"
	"github.com/minegocio/pos-web/internal/ports"
	"github.com/minegocio/pos-web/internal/testutil"
)

func newSessionService(tokens *mocksauth.MockTokenAPI) (*SessionService, *mocksauth.MemorySessionStore, *mocksauth.MemoryCartStore) {
	sessions := mocksauth.NewMemorySessionStore()
	carts := mocksauth.NewMemoryCartStore()
	svc := NewSessionService(SessionServiceOptions{
		Tokens:   tokens,
		Sessions: sessions,
		Carts:    carts,
	})
	return svc, sessions, carts
}

func cashierPair(t *testing.T) ports.TokenPair {
	t.Helper()
	return ports.TokenPair{
		Access:  testutil.AccessToken(t, "caro", []string{"Vendedores"}, time.Now().Add(5*time.Minute)),
		Refresh: "refresh-1",
	}
}

func TestSessionService_Login(t *testing.T) {
	t.Run("success persists the session and arms a timer", func(t *testing.T) {
		tokens := mocksauth.NewMockTokenAPI()
		tokens.Pair = cashierPair(t)
		svc, sessions, _ := newSessionService(tokens)
		defer svc.Close()

		sess, err := svc.Login(context.Background(), "caro", "secret")
		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, "caro", sess.Claims.Username)
		assert.False(t, sess.IsAdmin())

		assert.Equal(t, 1, sessions.Len())
		assert.Equal(t, 1, svc.ActiveTimers())
	})

	t.Run("empty credentials never reach the backend", func(t *testing.T) {
		tokens := mocksauth.NewMockTokenAPI()
		svc, _, _ := newSessionService(tokens)
		defer svc.Close()

		_, err := svc.Login(context.Background(), "", "")
		assert.True(t, apperrors.IsCredentials(err))
		assert.Equal(t, 0, tokens.ObtainCalls())
	})

	t.Run("rejected credentials surface as a credentials error", func(t *testing.T) {
		tokens := &mocksauth.MockTokenAPI{
			ObtainFunc: func(_ context.Context, _, _ string) (ports.TokenPair, error) {
				return ports.TokenPair{}, apperrors.Credentials("Wrong username or password.")
			},
		}
		svc, sessions, _ := newSessionService(tokens)
		defer svc.Close()

		_, err := svc.Login(context.Background(), "caro", "wrong")
		assert.True(t, apperrors.IsCredentials(err))
		assert.Equal(t, 0, sessions.Len())
		assert.Equal(t, 0, svc.ActiveTimers())
	})

	t.Run("backend down surfaces as unavailable", func(t *testing.T) {
		tokens := &mocksauth.MockTokenAPI{
			ObtainFunc: func(_ context.Context, _, _ string) (ports.TokenPair, error) {
				return ports.TokenPair{}, apperrors.Unavailable("Cannot reach the server.")
			},
		}
		svc, _, _ := newSessionService(tokens)
		defer svc.Close()

		_, err := svc.Login(context.Background(), "caro", "secret")
		assert.True(t, apperrors.IsUnavailable(err))
	})
}

func TestSessionService_Logout(t *testing.T) {
	tokens := mocksauth.NewMockTokenAPI()
	tokens.Pair = cashierPair(t)
	svc, sessions, carts := newSessionService(tokens)
	defer svc.Close()

	ctx := context.Background()
	sess, err := svc.Login(ctx, "caro", "secret")
	require.NoError(t, err)
	require.NoError(t, carts.SaveCart(ctx, sess.ID, ports.CartState{CashReceived: "10.00"}))

	require.NoError(t, svc.Logout(ctx, sess.ID))

	assert.Equal(t, 0, sessions.Len())
	assert.False(t, carts.Has(sess.ID))
	assert.Equal(t, 0, svc.ActiveTimers())

	// Idempotent: a second logout and an unknown ID both succeed.
	assert.NoError(t, svc.Logout(ctx, sess.ID))
	assert.NoError(t, svc.Logout(ctx, "never-existed"))
	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestSessionService_Refresh(t *testing.T) {
	t.Run("success replaces the access token and keeps one timer", func(t *testing.T) {
		tokens := mocksauth.NewMockTokenAPI()
		tokens.Pair = cashierPair(t)
		tokens.RefreshedTok = testutil.AccessToken(t, "caro", []string{"Vendedores"}, time.Now().Add(10*time.Minute))
		svc, _, _ := newSessionService(tokens)
		defer svc.Close()

		ctx := context.Background()
		sess, err := svc.Login(ctx, "caro", "secret")
		require.NoError(t, err)

		refreshed, err := svc.Refresh(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, refreshed.ID)
		assert.Equal(t, tokens.RefreshedTok, refreshed.AccessToken)
		assert.Equal(t, sess.RefreshToken, refreshed.RefreshToken)
		assert.Equal(t, 1, svc.ActiveTimers())

		resolved, err := svc.Resolve(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, tokens.RefreshedTok, resolved.AccessToken)
	})

	t.Run("rejected refresh token ends the session", func(t *testing.T) {
		tokens := mocksauth.NewMockTokenAPI()
		tokens.Pair = cashierPair(t)
		tokens.RefreshFunc = func(_ context.Context, _ string) (string, error) {
			return "", errors.New("token_not_valid")
		}
		svc, sessions, _ := newSessionService(tokens)
		defer svc.Close()

		ctx := context.Background()
		sess, err := svc.Login(ctx, "caro", "secret")
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, sess.ID)
		require.Error(t, err)

		assert.Equal(t, 0, sessions.Len())
		assert.Equal(t, 0, svc.ActiveTimers())
	})

	t.Run("unknown session is unauthorized", func(t *testing.T) {
		tokens := mocksauth.NewMockTokenAPI()
		svc, _, _ := newSessionService(tokens)
		defer svc.Close()

		_, err := svc.Refresh(context.Background(), "gone")
		assert.True(t, apperrors.IsUnauthorized(err))
		assert.Equal(t, 0, tokens.RefreshCalls())
	})
}

func TestSessionService_EnsureRefresh(t *testing.T) {
	tokens := mocksauth.NewMockTokenAPI()
	tokens.Pair = cashierPair(t)
	svc, _, _ := newSessionService(tokens)
	defer svc.Close()

	sess, err := svc.Login(context.Background(), "caro", "secret")
	require.NoError(t, err)
	require.Equal(t, 1, svc.ActiveTimers())

	// Already armed: no second timer.
	svc.EnsureRefresh(sess)
	assert.Equal(t, 1, svc.ActiveTimers())

	// After the timer is gone (say, a restart), EnsureRefresh re-arms it.
	svc.cancelRefresh(sess.ID)
	require.Equal(t, 0, svc.ActiveTimers())
	svc.EnsureRefresh(sess)
	assert.Equal(t, 1, svc.ActiveTimers())
}

func TestSessionService_SilentRefreshFires(t *testing.T) {
	refreshed := make(chan string, 1)
	tokens := mocksauth.NewMockTokenAPI()
	// Token already inside the 60s lead window, so the timer fires at once.
	tokens.Pair = ports.TokenPair{
		Access:  testutil.AccessToken(t, "caro", []string{"Vendedores"}, time.Now().Add(30*time.Second)),
		Refresh: "refresh-1",
	}
	tokens.RefreshFunc = func(_ context.Context, refresh string) (string, error) {
		refreshed <- refresh
		return testutil.AccessToken(t, "caro", []string{"Vendedores"}, time.Now().Add(5*time.Minute)), nil
	}
	svc, _, _ := newSessionService(tokens)
	defer svc.Close()

	_, err := svc.Login(context.Background(), "caro", "secret")
	require.NoError(t, err)

	select {
	case got := <-refreshed:
		assert.Equal(t, "refresh-1", got)
	case <-time.After(2 * time.Second):
		t.Fatal("silent refresh never fired")
	}
}

func TestSessionService_Close(t *testing.T) {
	tokens := mocksauth.NewMockTokenAPI()
	tokens.Pair = cashierPair(t)
	svc, _, _ := newSessionService(tokens)

	_, err := svc.Login(context.Background(), "caro", "secret")
	require.NoError(t, err)
	require.Equal(t, 1, svc.ActiveTimers())

	svc.Close()
	assert.Equal(t, 0, svc.ActiveTimers())

	// No timers are armed after Close.
	sess, err := svc.Login(context.Background(), "caro", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 0, svc.ActiveTimers())
}
