package store

import (
	"context"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type ProjectStore struct {
	*Collection[models.Project, models.ProjectFilters]
	api *api.Projects
}

func NewProjectStore(projects *api.Projects, opts ...Option) *ProjectStore {
	return &ProjectStore{
		Collection: newCollection(collectionSpec[models.Project, models.ProjectFilters]{
			plural:   "projects",
			singular: "project",
			defaults: models.DefaultProjectFilters(),
			list: func(ctx context.Context, f models.ProjectFilters, p Page) ([]models.Project, transport.PageMeta, error) {
				f.Page = p.CurrentPage
				if f.PerPage == 0 {
					f.PerPage = p.PerPage
				}
				return pageOf(projects.List(ctx, f))
			},
			get: projects.Get,
		}, newSettings(opts)),
		api: projects,
	}
}

func (s *ProjectStore) Create(ctx context.Context, data models.CreateProjectData) (models.Project, error) {
	return mutate(s.Collection, "Failed to create project", func() (models.Project, error) {
		return s.api.Create(ctx, data)
	}, s.prepend)
}

func (s *ProjectStore) Update(ctx context.Context, id int64, data models.UpdateProjectData) (models.Project, error) {
	return mutate(s.Collection, "Failed to update project", func() (models.Project, error) {
		return s.api.Update(ctx, id, data)
	}, s.replace)
}

func (s *ProjectStore) Remove(ctx context.Context, id int64) error {
	return drop(s.Collection, "Failed to delete project", id, func() error {
		return s.api.Delete(ctx, id)
	})
}

func (s *ProjectStore) Archive(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, models.ProjectArchived, "Failed to archive project", s.api.Archive)
}

func (s *ProjectStore) Unarchive(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, models.ProjectActive, "Failed to unarchive project", s.api.Unarchive)
}

func (s *ProjectStore) setStatus(ctx context.Context, id int64, status, fallback string, call func(context.Context, int64) error) error {
	done := s.track()
	defer done()

	if err := call(ctx, id); err != nil {
		return s.fail(err, fallback)
	}
	s.patch(id, func(p *models.Project) { p.Status = status })
	return nil
}

func (s *ProjectStore) HasProjects() bool {
	return s.Len() > 0
}
