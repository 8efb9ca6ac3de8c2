package store

import (
	"context"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/internal/errors"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/session"
)

// AuthStore signs users in and out and mirrors the stored profile.
type AuthStore struct {
	state
	api      *api.Auth
	sessions *session.Manager
	user     *models.User
}

func NewAuthStore(auth *api.Auth, sessions *session.Manager, opts ...Option) *AuthStore {
	s := newSettings(opts)
	return &AuthStore{
		state:    state{log: s.logger.With().Str("store", "auth").Logger()},
		api:      auth,
		sessions: sessions,
	}
}

// Login stores the credential durably when remember is set, otherwise for this process only.
func (s *AuthStore) Login(ctx context.Context, creds models.LoginCredentials, remember bool) (models.AuthResponse, error) {
	scope := session.ScopeEphemeral
	if remember {
		scope = session.ScopeDurable
	}
	return s.signIn(ctx, "Login failed", scope, func() (models.AuthResponse, error) {
		return s.api.Login(ctx, creds)
	})
}

// Register signs the new account in durably.
func (s *AuthStore) Register(ctx context.Context, data models.RegisterData) (models.AuthResponse, error) {
	return s.signIn(ctx, "Registration failed", session.ScopeDurable, func() (models.AuthResponse, error) {
		return s.api.Register(ctx, data)
	})
}

func (s *AuthStore) signIn(ctx context.Context, fallback string, scope session.Scope, call func() (models.AuthResponse, error)) (models.AuthResponse, error) {
	done := s.track()
	defer done()

	res, err := call()
	if err != nil {
		return res, s.fail(err, fallback)
	}
	if res.Token == "" {
		return res, s.fail(errors.Wrapf(errors.ErrInvalidResponse, "[AuthStore] no token in response"), fallback)
	}
	if err := s.sessions.SetCredential(ctx, res.Token, res.User, scope); err != nil {
		return res, s.fail(err, fallback)
	}
	set(&s.state, &s.user, res.User)
	return res, nil
}

// Logout tells the server, then forgets the credential whatever the server answered.
func (s *AuthStore) Logout(ctx context.Context) error {
	done := s.track()
	defer done()

	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("logout request failed")
	}
	set(&s.state, &s.user, nil)
	return s.sessions.ClearCredential(ctx)
}

// FetchUser reloads the profile from the server and stores it next to the token.
func (s *AuthStore) FetchUser(ctx context.Context) (*models.User, error) {
	done := s.track()
	defer done()

	u, err := s.api.Me(ctx)
	if err != nil {
		return nil, s.fail(err, "Failed to fetch user")
	}
	if u == nil {
		return nil, s.fail(errors.Wrapf(errors.ErrInvalidResponse, "[AuthStore] no user in response"), "Failed to fetch user")
	}
	if err := s.sessions.SetUser(ctx, u); err != nil {
		return nil, s.fail(err, "Failed to fetch user")
	}
	set(&s.state, &s.user, u)
	return u, nil
}

// Initialize loads the stored profile without contacting the server.
func (s *AuthStore) Initialize(ctx context.Context) error {
	u, err := s.sessions.User(ctx)
	if err != nil {
		return err
	}
	set(&s.state, &s.user, u)
	return nil
}

// IsAuthenticated reads the session rather than the cached profile.
func (s *AuthStore) IsAuthenticated(ctx context.Context) bool {
	return s.sessions.IsAuthenticated(ctx)
}

// User returns a copy of the signed in profile, nil when signed out.
func (s *AuthStore) User() *models.User {
	u := read(&s.state, &s.user)
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func (s *AuthStore) IsAdmin() bool {
	return s.User().IsAdmin()
}

func (s *AuthStore) IsManager() bool {
	return s.User().IsManager()
}

func (s *AuthStore) UserName() string {
	if u := s.User(); u != nil {
		return u.Name
	}
	return ""
}

func (s *AuthStore) UserEmail() string {
	if u := s.User(); u != nil {
		return u.Email
	}
	return ""
}

// Reset forgets the cached profile. The stored credential is left alone.
func (s *AuthStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.err = ""
}
