package api

import (
	"context"
	"fmt"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type Activities struct {
	t *transport.Client
}

func (a *Activities) Feed(ctx context.Context, page int) (*transport.PageEnvelope[models.Activity], error) {
	res, err := a.list(ctx, "/activities", page)
	return res, wrap(err, "[api ActivityFeed] page %d", page)
}

func (a *Activities) ForProject(ctx context.Context, projectID int64, page int) (*transport.PageEnvelope[models.Activity], error) {
	res, err := a.list(ctx, fmt.Sprintf("/projects/%d/activities", projectID), page)
	return res, wrap(err, "[api ProjectActivities] project %d page %d", projectID, page)
}

func (a *Activities) ForTask(ctx context.Context, taskID int64, page int) (*transport.PageEnvelope[models.Activity], error) {
	res, err := a.list(ctx, fmt.Sprintf("/tasks/%d/activities", taskID), page)
	return res, wrap(err, "[api TaskActivities] task %d page %d", taskID, page)
}

func (a *Activities) list(ctx context.Context, path string, page int) (*transport.PageEnvelope[models.Activity], error) {
	if page < 1 {
		page = 1
	}
	return transport.GetPage[models.Activity](ctx, a.t, path, transport.WithQuery(models.PageQuery(page)))
}
