package api

import (
	"context"
	"fmt"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type Tags struct {
	t *transport.Client
}

func (s *Tags) List(ctx context.Context) ([]models.Tag, error) {
	res, err := get[[]models.Tag](ctx, s.t, "/tags")
	return res, wrap(err, "[api ListTags]")
}

func (s *Tags) Get(ctx context.Context, id int64) (models.Tag, error) {
	res, err := get[models.Tag](ctx, s.t, fmt.Sprintf("/tags/%d", id))
	return res, wrap(err, "[api GetTag] id %d", id)
}

func (s *Tags) Create(ctx context.Context, data models.CreateTagData) (models.Tag, error) {
	res, err := post[models.Tag](ctx, s.t, "/tags", data)
	return res, wrap(err, "[api CreateTag]")
}

func (s *Tags) Update(ctx context.Context, id int64, data models.UpdateTagData) (models.Tag, error) {
	res, err := put[models.Tag](ctx, s.t, fmt.Sprintf("/tags/%d", id), data)
	return res, wrap(err, "[api UpdateTag] id %d", id)
}

func (s *Tags) Delete(ctx context.Context, id int64) error {
	return wrap(transport.Delete(ctx, s.t, fmt.Sprintf("/tags/%d", id)), "[api DeleteTag] id %d", id)
}
