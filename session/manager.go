package session

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/jrsteele09/taskflow-client/internal/errors"
)

// Theme preference values.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Manager owns the bearer credential and the signed-in user. Token and user always live together
// in exactly one scope: durable when the user asked to be remembered, ephemeral otherwise.
type Manager struct {
	durable   KV
	ephemeral KV
}

// NewManager creates a Manager over a durable and an ephemeral store.
func NewManager(durable, ephemeral KV) (*Manager, error) {
	if durable == nil {
		return nil, fmt.Errorf("[NewManager] durable store is required")
	}
	if ephemeral == nil {
		return nil, fmt.Errorf("[NewManager] ephemeral store is required")
	}
	return &Manager{durable: durable, ephemeral: ephemeral}, nil
}

func (m *Manager) kv(scope Scope) KV {
	if scope == ScopeDurable {
		return m.durable
	}
	return m.ephemeral
}

func other(scope Scope) Scope {
	if scope == ScopeDurable {
		return ScopeEphemeral
	}
	return ScopeDurable
}

// SetCredential stores token and user in scope and clears the other scope.
func (m *Manager) SetCredential(ctx context.Context, token string, user *User, scope Scope) error {
	if token == "" {
		return fmt.Errorf("[SetCredential] token is required")
	}
	if scope != ScopeDurable && scope != ScopeEphemeral {
		return fmt.Errorf("[SetCredential] unknown scope %q", scope)
	}

	if err := m.kv(other(scope)).Delete(ctx, keyToken, keyUser); err != nil {
		return errors.Wrapf(err, "[SetCredential] clearing %s scope", other(scope))
	}

	target := m.kv(scope)
	if err := target.Set(ctx, keyToken, token); err != nil {
		return errors.Wrapf(err, "[SetCredential] storing token")
	}
	if user != nil {
		if err := writeUser(ctx, target, user); err != nil {
			return err
		}
	}

	if scope == ScopeDurable {
		return m.durable.Set(ctx, keyRememberMe, "true")
	}
	return m.durable.Delete(ctx, keyRememberMe)
}

// Token returns the current credential, looking in the durable scope first. A nil token with a
// nil error means no one is signed in.
func (m *Manager) Token(ctx context.Context) (*oauth2.Token, Scope, error) {
	for _, scope := range []Scope{ScopeDurable, ScopeEphemeral} {
		raw, ok, err := m.kv(scope).Get(ctx, keyToken)
		if err != nil {
			return nil, "", errors.Wrapf(err, "[Token] reading %s scope", scope)
		}
		if ok && raw != "" {
			return &oauth2.Token{
				AccessToken: raw,
				TokenType:   "Bearer",
				Expiry:      ParseExpiry(raw),
			}, scope, nil
		}
	}
	return nil, "", nil
}

// ReplaceToken swaps the token in whichever scope currently holds one, or ephemeral if none does.
func (m *Manager) ReplaceToken(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("[ReplaceToken] token is required")
	}
	_, scope, err := m.Token(ctx)
	if err != nil {
		return err
	}
	if scope == "" {
		scope = ScopeEphemeral
	}
	return m.kv(scope).Set(ctx, keyToken, token)
}

// User returns the stored profile from the scope holding the token.
func (m *Manager) User(ctx context.Context) (*User, error) {
	for _, scope := range []Scope{ScopeDurable, ScopeEphemeral} {
		raw, ok, err := m.kv(scope).Get(ctx, keyUser)
		if err != nil {
			return nil, errors.Wrapf(err, "[User] reading %s scope", scope)
		}
		if !ok || raw == "" {
			continue
		}
		u := &User{}
		if err := json.Unmarshal([]byte(raw), u); err != nil {
			return nil, errors.Wrapf(err, "[User] decoding")
		}
		return u, nil
	}
	return nil, nil
}

// SetUser refreshes the stored profile alongside the current token.
func (m *Manager) SetUser(ctx context.Context, user *User) error {
	if user == nil {
		return fmt.Errorf("[SetUser] user is required")
	}
	_, scope, err := m.Token(ctx)
	if err != nil {
		return err
	}
	if scope == "" {
		scope = ScopeEphemeral
	}
	return writeUser(ctx, m.kv(scope), user)
}

// ClearCredential removes token, user and the remember flag from both scopes.
func (m *Manager) ClearCredential(ctx context.Context) error {
	if err := m.ephemeral.Delete(ctx, keyToken, keyUser); err != nil {
		return errors.Wrapf(err, "[ClearCredential] ephemeral")
	}
	if err := m.durable.Delete(ctx, keyToken, keyUser, keyRememberMe); err != nil {
		return errors.Wrapf(err, "[ClearCredential] durable")
	}
	return nil
}

// IsAuthenticated reports whether a token is held in either scope.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	tok, _, err := m.Token(ctx)
	return err == nil && tok != nil
}

// RememberMe reports whether the last sign-in asked for a durable session.
func (m *Manager) RememberMe(ctx context.Context) bool {
	v, ok, err := m.durable.Get(ctx, keyRememberMe)
	return err == nil && ok && v == "true"
}

// Theme returns the stored display preference, ThemeLight when unset.
func (m *Manager) Theme(ctx context.Context) string {
	v, ok, err := m.durable.Get(ctx, keyTheme)
	if err != nil || !ok || v == "" {
		return ThemeLight
	}
	return v
}

func (m *Manager) SetTheme(ctx context.Context, theme string) error {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return fmt.Errorf("[SetTheme] unknown theme %q", theme)
	}
	return m.durable.Set(ctx, keyTheme, theme)
}

func writeUser(ctx context.Context, kv KV, user *User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrapf(err, "[writeUser] encoding")
	}
	if err := kv.Set(ctx, keyUser, string(data)); err != nil {
		return errors.Wrapf(err, "[writeUser] storing")
	}
	return nil
}
