package store

import (
	"context"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type TagStore struct {
	*Collection[models.Tag, NoFilters]
	api *api.Tags
}

func NewTagStore(tags *api.Tags, opts ...Option) *TagStore {
	return &TagStore{
		Collection: newCollection(collectionSpec[models.Tag, NoFilters]{
			plural:   "tags",
			singular: "tag",
			list: func(ctx context.Context, _ NoFilters, _ Page) ([]models.Tag, transport.PageMeta, error) {
				return unpaged(tags.List(ctx))
			},
			get: tags.Get,
		}, newSettings(opts)),
		api: tags,
	}
}

// Create appends the new tag; tags are listed oldest first.
func (s *TagStore) Create(ctx context.Context, data models.CreateTagData) (models.Tag, error) {
	return mutate(s.Collection, "Failed to create tag", func() (models.Tag, error) {
		return s.api.Create(ctx, data)
	}, s.appendItem)
}

func (s *TagStore) Update(ctx context.Context, id int64, data models.UpdateTagData) (models.Tag, error) {
	return mutate(s.Collection, "Failed to update tag", func() (models.Tag, error) {
		return s.api.Update(ctx, id, data)
	}, s.replace)
}

func (s *TagStore) Remove(ctx context.Context, id int64) error {
	return drop(s.Collection, "Failed to delete tag", id, func() error {
		return s.api.Delete(ctx, id)
	})
}
