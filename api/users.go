package api

import (
	"context"
	"fmt"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type Users struct {
	t *transport.Client
}

func (s *Users) List(ctx context.Context) ([]models.User, error) {
	res, err := get[[]models.User](ctx, s.t, "/users")
	return res, wrap(err, "[api ListUsers]")
}

func (s *Users) Get(ctx context.Context, id int64) (models.User, error) {
	res, err := get[models.User](ctx, s.t, fmt.Sprintf("/users/%d", id))
	return res, wrap(err, "[api GetUser] id %d", id)
}

func (s *Users) Create(ctx context.Context, data models.CreateUserData) (models.User, error) {
	res, err := post[models.User](ctx, s.t, "/users", data)
	return res, wrap(err, "[api CreateUser] %s", data.Email)
}

func (s *Users) Update(ctx context.Context, id int64, data models.UpdateUserData) (models.User, error) {
	res, err := put[models.User](ctx, s.t, fmt.Sprintf("/users/%d", id), data)
	return res, wrap(err, "[api UpdateUser] id %d", id)
}

func (s *Users) Delete(ctx context.Context, id int64) error {
	return wrap(transport.Delete(ctx, s.t, fmt.Sprintf("/users/%d", id)), "[api DeleteUser] id %d", id)
}
