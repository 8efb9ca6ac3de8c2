package api

import (
	"context"
	"fmt"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type Dependencies struct {
	t *transport.Client
}

func (d *Dependencies) ForTask(ctx context.Context, taskID int64) ([]models.Dependency, error) {
	res, err := get[[]models.Dependency](ctx, d.t, fmt.Sprintf("/tasks/%d/dependencies", taskID))
	return res, wrap(err, "[api TaskDependencies] task %d", taskID)
}

// Dependents lists the dependencies other tasks hold on taskID.
func (d *Dependencies) Dependents(ctx context.Context, taskID int64) ([]models.Dependency, error) {
	res, err := get[[]models.Dependency](ctx, d.t, fmt.Sprintf("/tasks/%d/dependents", taskID))
	return res, wrap(err, "[api TaskDependents] task %d", taskID)
}

func (d *Dependencies) Tree(ctx context.Context, taskID int64) (models.DependencyTree, error) {
	res, err := get[models.DependencyTree](ctx, d.t, fmt.Sprintf("/tasks/%d/dependency-tree", taskID))
	return res, wrap(err, "[api DependencyTree] task %d", taskID)
}

func (d *Dependencies) Create(ctx context.Context, taskID int64, data models.CreateDependencyData) (models.Dependency, error) {
	res, err := post[models.Dependency](ctx, d.t, fmt.Sprintf("/tasks/%d/dependencies", taskID), data)
	return res, wrap(err, "[api CreateDependency] task %d on %d", taskID, data.DependsOnTaskID)
}

func (d *Dependencies) Delete(ctx context.Context, id int64) error {
	return wrap(transport.Delete(ctx, d.t, fmt.Sprintf("/dependencies/%d", id)), "[api DeleteDependency] id %d", id)
}
