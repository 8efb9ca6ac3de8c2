package api

import (
	"context"
	"net/http"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type Auth struct {
	t *transport.Client
}

func (a *Auth) Login(ctx context.Context, creds models.LoginCredentials) (models.AuthResponse, error) {
	res, err := post[models.AuthResponse](ctx, a.t, "/auth/login", creds)
	return res, wrap(err, "[api Login] %s", creds.Email)
}

func (a *Auth) Register(ctx context.Context, data models.RegisterData) (models.AuthResponse, error) {
	res, err := post[models.AuthResponse](ctx, a.t, "/auth/register", data)
	return res, wrap(err, "[api Register] %s", data.Email)
}

func (a *Auth) Logout(ctx context.Context) error {
	return wrap(send(ctx, a.t, http.MethodPost, "/auth/logout", nil), "[api Logout]")
}

func (a *Auth) Me(ctx context.Context) (*models.User, error) {
	res, err := get[models.MeResponse](ctx, a.t, "/auth/me")
	if err != nil {
		return nil, wrap(err, "[api Me]")
	}
	return res.User, nil
}

// Refresh exchanges the current bearer token for a new one.
func (a *Auth) Refresh(ctx context.Context) (string, error) {
	res, err := post[models.AuthResponse](ctx, a.t, "/auth/refresh", nil)
	return res.Token, wrap(err, "[api Refresh]")
}

func (a *Auth) UpdateProfile(ctx context.Context, data models.UpdateProfileData) (*models.User, error) {
	res, err := put[models.User](ctx, a.t, "/auth/profile", data)
	if err != nil {
		return nil, wrap(err, "[api UpdateProfile]")
	}
	return &res, nil
}

func (a *Auth) ChangePassword(ctx context.Context, data models.ChangePasswordData) error {
	return wrap(send(ctx, a.t, http.MethodPost, "/auth/change-password", data), "[api ChangePassword]")
}

func (a *Auth) UpdateSettings(ctx context.Context, settings models.UserSettings) error {
	return wrap(send(ctx, a.t, http.MethodPut, "/auth/settings", settings), "[api UpdateSettings]")
}
