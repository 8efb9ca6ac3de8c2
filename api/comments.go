package api

import (
	"context"
	"fmt"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type Comments struct {
	t *transport.Client
}

func (c *Comments) ForTask(ctx context.Context, taskID int64) ([]models.Comment, error) {
	res, err := get[[]models.Comment](ctx, c.t, fmt.Sprintf("/tasks/%d/comments", taskID))
	return res, wrap(err, "[api TaskComments] task %d", taskID)
}

func (c *Comments) Create(ctx context.Context, taskID int64, content string) (models.Comment, error) {
	res, err := post[models.Comment](ctx, c.t, fmt.Sprintf("/tasks/%d/comments", taskID), models.CommentData{Content: content})
	return res, wrap(err, "[api CreateComment] task %d", taskID)
}

func (c *Comments) Update(ctx context.Context, id int64, content string) (models.Comment, error) {
	res, err := put[models.Comment](ctx, c.t, fmt.Sprintf("/comments/%d", id), models.CommentData{Content: content})
	return res, wrap(err, "[api UpdateComment] id %d", id)
}

func (c *Comments) Delete(ctx context.Context, id int64) error {
	return wrap(transport.Delete(ctx, c.t, fmt.Sprintf("/comments/%d", id)), "[api DeleteComment] id %d", id)
}

func (c *Comments) Get(ctx context.Context, id int64) (models.Comment, error) {
	res, err := get[models.Comment](ctx, c.t, fmt.Sprintf("/comments/%d", id))
	return res, wrap(err, "[api GetComment] id %d", id)
}
