package store

import (
	"context"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

// ActivityScope selects the global feed, one project's feed or one task's feed.
type ActivityScope struct {
	ProjectID int64
	TaskID    int64
}

type ActivityStore struct {
	*Collection[models.Activity, ActivityScope]
}

func NewActivityStore(activities *api.Activities, opts ...Option) *ActivityStore {
	return &ActivityStore{
		Collection: newCollection(collectionSpec[models.Activity, ActivityScope]{
			plural:   "activities",
			singular: "activity",
			list: func(ctx context.Context, scope ActivityScope, p Page) ([]models.Activity, transport.PageMeta, error) {
				switch {
				case scope.TaskID != 0:
					return pageOf(activities.ForTask(ctx, scope.TaskID, p.CurrentPage))
				case scope.ProjectID != 0:
					return pageOf(activities.ForProject(ctx, scope.ProjectID, p.CurrentPage))
				}
				return pageOf(activities.Feed(ctx, p.CurrentPage))
			},
			get: func(context.Context, int64) (models.Activity, error) {
				return models.Activity{}, errUnsupported("activities")
			},
		}, newSettings(opts)),
	}
}

// FetchFeed loads page of the global feed. Page 1 replaces the cache, later pages append.
func (s *ActivityStore) FetchFeed(ctx context.Context, page int) {
	s.fetchScoped(ctx, ActivityScope{}, page)
}

func (s *ActivityStore) FetchForProject(ctx context.Context, projectID int64, page int) {
	s.fetchScoped(ctx, ActivityScope{ProjectID: projectID}, page)
}

func (s *ActivityStore) FetchForTask(ctx context.Context, taskID int64, page int) {
	s.fetchScoped(ctx, ActivityScope{TaskID: taskID}, page)
}

func (s *ActivityStore) fetchScoped(ctx context.Context, scope ActivityScope, page int) {
	s.SetFilters(scope)
	s.fetch(ctx, scope, page)
}
