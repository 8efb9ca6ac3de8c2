package store

import (
	"context"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type TaskStore struct {
	*Collection[models.Task, models.TaskFilters]
	api *api.Tasks
}

func NewTaskStore(tasks *api.Tasks, opts ...Option) *TaskStore {
	return &TaskStore{
		Collection: newCollection(collectionSpec[models.Task, models.TaskFilters]{
			plural:   "tasks",
			singular: "task",
			defaults: models.DefaultTaskFilters(),
			list: func(ctx context.Context, f models.TaskFilters, p Page) ([]models.Task, transport.PageMeta, error) {
				f.Page = p.CurrentPage
				if f.PerPage == 0 {
					f.PerPage = p.PerPage
				}
				return pageOf(tasks.List(ctx, f))
			},
			get: tasks.Get,
		}, newSettings(opts)),
		api: tasks,
	}
}

// Create adds the new task to the front of the cache.
func (s *TaskStore) Create(ctx context.Context, data models.CreateTaskData) (models.Task, error) {
	return mutate(s.Collection, "Failed to create task", func() (models.Task, error) {
		return s.api.Create(ctx, data)
	}, s.prepend)
}

func (s *TaskStore) Update(ctx context.Context, id int64, data models.UpdateTaskData) (models.Task, error) {
	return mutate(s.Collection, "Failed to update task", func() (models.Task, error) {
		return s.api.Update(ctx, id, data)
	}, s.replace)
}

func (s *TaskStore) Remove(ctx context.Context, id int64) error {
	return drop(s.Collection, "Failed to delete task", id, func() error {
		return s.api.Delete(ctx, id)
	})
}

func (s *TaskStore) Assign(ctx context.Context, id, userID int64) (models.Task, error) {
	return mutate(s.Collection, "Failed to assign task", func() (models.Task, error) {
		return s.api.Assign(ctx, id, models.AssignTaskData{UserID: userID})
	}, s.replace)
}

func (s *TaskStore) UpdateStatus(ctx context.Context, id int64, status string) (models.Task, error) {
	return mutate(s.Collection, "Failed to update task status", func() (models.Task, error) {
		return s.api.UpdateStatus(ctx, id, models.UpdateStatusData{Status: status})
	}, s.replace)
}

func (s *TaskStore) UpdatePriority(ctx context.Context, id int64, priority string) (models.Task, error) {
	return mutate(s.Collection, "Failed to update task priority", func() (models.Task, error) {
		return s.api.UpdatePriority(ctx, id, models.UpdatePriorityData{Priority: priority})
	}, s.replace)
}

func (s *TaskStore) HasTasks() bool {
	return s.Len() > 0
}

func (s *TaskStore) SetProjectFilter(projectID int64) {
	s.UpdateFilters(func(f *models.TaskFilters) { f.ProjectID = projectID })
}

func (s *TaskStore) SetSearch(search string) {
	s.UpdateFilters(func(f *models.TaskFilters) { f.Search = search })
}

func (s *TaskStore) SetStatus(status string) {
	s.UpdateFilters(func(f *models.TaskFilters) { f.Status = status })
}

func (s *TaskStore) SetPriority(priority string) {
	s.UpdateFilters(func(f *models.TaskFilters) { f.Priority = priority })
}

func (s *TaskStore) SetAssignedTo(userID int64) {
	s.UpdateFilters(func(f *models.TaskFilters) { f.AssignedTo = userID })
}

// SetSort orders by field; an empty order means descending.
func (s *TaskStore) SetSort(field, order string) {
	if order == "" {
		order = models.OrderDesc
	}
	s.UpdateFilters(func(f *models.TaskFilters) {
		f.Sort = field
		f.Order = order
	})
}
