package store_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/taskflow-client/apitest"
	"github.com/jrsteele09/taskflow-client/internal/errors"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/session"
	"github.com/jrsteele09/taskflow-client/store"
)

func signedOutFixture(t *testing.T) *testFixture {
	t.Helper()
	f := setupTestFixture(t)
	require.NoError(t, f.sessions.ClearCredential(context.Background()))
	f.server.Handle(http.MethodPost, "/auth/login", apitest.Data(models.AuthResponse{
		Token: "fresh",
		User:  &models.User{ID: 4, Name: "Grace", Email: "grace@example.com", Role: session.RoleManager},
	}))
	return f
}

func TestAuthStore_LoginScopes(t *testing.T) {
	tests := []struct {
		name     string
		remember bool
	}{
		{name: "remembered", remember: true},
		{name: "session only", remember: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := signedOutFixture(t)
			s := store.NewAuthStore(f.api.Auth, f.sessions)
			ctx := context.Background()

			_, err := s.Login(ctx, models.LoginCredentials{Email: "grace@example.com", Password: "pw"}, tc.remember)
			require.NoError(t, err)

			tok, scope, err := f.sessions.Token(ctx)
			require.NoError(t, err)
			require.Equal(t, "fresh", tok.AccessToken)
			want, other := f.ephemeral, f.durable
			wantScope := session.ScopeEphemeral
			if tc.remember {
				want, other = f.durable, f.ephemeral
				wantScope = session.ScopeDurable
			}
			require.Equal(t, wantScope, scope)
			require.Equal(t, tc.remember, f.sessions.RememberMe(ctx))

			_, found, err := want.Get(ctx, "token")
			require.NoError(t, err)
			require.True(t, found)
			_, found, err = other.Get(ctx, "token")
			require.NoError(t, err)
			require.False(t, found)

			require.True(t, s.IsAuthenticated(ctx))
			require.Equal(t, "Grace", s.UserName())
			require.True(t, s.IsManager())
			require.False(t, s.IsAdmin())
		})
	}
}

func TestAuthStore_LoginFailure(t *testing.T) {
	f := signedOutFixture(t)
	f.server.Handle(http.MethodPost, "/auth/login", apitest.Status(http.StatusUnprocessableEntity, "These credentials do not match our records."))
	s := store.NewAuthStore(f.api.Auth, f.sessions)
	ctx := context.Background()

	_, err := s.Login(ctx, models.LoginCredentials{Email: "x", Password: "y"}, true)
	require.Error(t, err)
	require.Equal(t, "These credentials do not match our records.", s.Err())
	require.False(t, s.IsAuthenticated(ctx))
	require.Nil(t, s.User())
}

func TestAuthStore_LoginWithoutToken(t *testing.T) {
	f := signedOutFixture(t)
	f.server.Handle(http.MethodPost, "/auth/login", apitest.Data(models.AuthResponse{}))
	s := store.NewAuthStore(f.api.Auth, f.sessions)

	_, err := s.Login(context.Background(), models.LoginCredentials{}, false)
	require.ErrorIs(t, err, errors.ErrInvalidResponse)
	require.Equal(t, "Login failed", s.Err())
}

func TestAuthStore_LogoutClearsEvenWhenServerFails(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodPost, "/auth/logout", apitest.Status(http.StatusInternalServerError, ""))
	s := store.NewAuthStore(f.api.Auth, f.sessions)
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx))
	require.Equal(t, "Ada", s.UserName())

	require.NoError(t, s.Logout(ctx))
	require.False(t, s.IsAuthenticated(ctx))
	require.Nil(t, s.User())
	require.Equal(t, 1, f.server.Count(http.MethodPost, "/auth/logout"))
}

func TestAuthStore_FetchUserPersistsProfile(t *testing.T) {
	f := setupTestFixture(t)
	f.server.Handle(http.MethodGet, "/auth/me", apitest.Data(map[string]any{
		"user": models.User{ID: 1, Name: "Ada Lovelace", Role: session.RoleAdmin},
	}))
	s := store.NewAuthStore(f.api.Auth, f.sessions)
	ctx := context.Background()

	u, err := s.FetchUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", u.Name)
	require.True(t, s.IsAdmin())

	stored, err := f.sessions.User(ctx)
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", stored.Name)
}
