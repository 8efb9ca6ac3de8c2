package store

import (
	"context"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/session"
	"github.com/jrsteele09/taskflow-client/transport"
)

type UserStore struct {
	*Collection[models.User, NoFilters]
	api *api.Users
}

func NewUserStore(users *api.Users, opts ...Option) *UserStore {
	return &UserStore{
		Collection: newCollection(collectionSpec[models.User, NoFilters]{
			plural:   "users",
			singular: "user",
			list: func(ctx context.Context, _ NoFilters, _ Page) ([]models.User, transport.PageMeta, error) {
				return unpaged(users.List(ctx))
			},
			get: users.Get,
		}, newSettings(opts)),
		api: users,
	}
}

func (s *UserStore) Create(ctx context.Context, data models.CreateUserData) (models.User, error) {
	return mutate(s.Collection, "Failed to create user", func() (models.User, error) {
		return s.api.Create(ctx, data)
	}, s.appendItem)
}

func (s *UserStore) Update(ctx context.Context, id int64, data models.UpdateUserData) (models.User, error) {
	return mutate(s.Collection, "Failed to update user", func() (models.User, error) {
		return s.api.Update(ctx, id, data)
	}, s.replace)
}

func (s *UserStore) Remove(ctx context.Context, id int64) error {
	return drop(s.Collection, "Failed to delete user", id, func() error {
		return s.api.Delete(ctx, id)
	})
}

func (s *UserStore) Admins() []models.User {
	return s.withRole(session.RoleAdmin)
}

func (s *UserStore) Managers() []models.User {
	return s.withRole(session.RoleManager)
}

func (s *UserStore) Members() []models.User {
	return s.withRole(session.RoleMember)
}

func (s *UserStore) withRole(role session.RoleType) []models.User {
	var out []models.User
	for _, u := range s.Items() {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}
