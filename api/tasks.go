package api

import (
	"context"
	"fmt"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type Tasks struct {
	t *transport.Client
}

func (s *Tasks) List(ctx context.Context, filters models.TaskFilters) (*transport.PageEnvelope[models.Task], error) {
	page, err := transport.GetPage[models.Task](ctx, s.t, "/tasks", transport.WithQuery(filters.Query()))
	return page, wrap(err, "[api ListTasks]")
}

func (s *Tasks) Get(ctx context.Context, id int64) (models.Task, error) {
	res, err := get[models.Task](ctx, s.t, fmt.Sprintf("/tasks/%d", id))
	return res, wrap(err, "[api GetTask] id %d", id)
}

func (s *Tasks) Create(ctx context.Context, data models.CreateTaskData) (models.Task, error) {
	res, err := post[models.Task](ctx, s.t, "/tasks", data)
	return res, wrap(err, "[api CreateTask]")
}

func (s *Tasks) Update(ctx context.Context, id int64, data models.UpdateTaskData) (models.Task, error) {
	res, err := put[models.Task](ctx, s.t, fmt.Sprintf("/tasks/%d", id), data)
	return res, wrap(err, "[api UpdateTask] id %d", id)
}

func (s *Tasks) Delete(ctx context.Context, id int64) error {
	return wrap(transport.Delete(ctx, s.t, fmt.Sprintf("/tasks/%d", id)), "[api DeleteTask] id %d", id)
}

func (s *Tasks) Assign(ctx context.Context, id int64, data models.AssignTaskData) (models.Task, error) {
	res, err := post[models.Task](ctx, s.t, fmt.Sprintf("/tasks/%d/assign", id), data)
	return res, wrap(err, "[api AssignTask] id %d", id)
}

func (s *Tasks) UpdateStatus(ctx context.Context, id int64, data models.UpdateStatusData) (models.Task, error) {
	res, err := put[models.Task](ctx, s.t, fmt.Sprintf("/tasks/%d/status", id), data)
	return res, wrap(err, "[api UpdateTaskStatus] id %d", id)
}

func (s *Tasks) UpdatePriority(ctx context.Context, id int64, data models.UpdatePriorityData) (models.Task, error) {
	res, err := put[models.Task](ctx, s.t, fmt.Sprintf("/tasks/%d/priority", id), data)
	return res, wrap(err, "[api UpdateTaskPriority] id %d", id)
}

func (s *Tasks) Subtasks(ctx context.Context, id int64) ([]models.Task, error) {
	res, err := get[[]models.Task](ctx, s.t, fmt.Sprintf("/tasks/%d/subtasks", id))
	return res, wrap(err, "[api Subtasks] id %d", id)
}

func (s *Tasks) CreateSubtask(ctx context.Context, parentID int64, data models.CreateTaskData) (models.Task, error) {
	res, err := post[models.Task](ctx, s.t, fmt.Sprintf("/tasks/%d/subtasks", parentID), data)
	return res, wrap(err, "[api CreateSubtask] parent %d", parentID)
}
