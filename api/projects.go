package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type Projects struct {
	t *transport.Client
}

func (p *Projects) List(ctx context.Context, filters models.ProjectFilters) (*transport.PageEnvelope[models.Project], error) {
	page, err := transport.GetPage[models.Project](ctx, p.t, "/projects", transport.WithQuery(filters.Query()))
	return page, wrap(err, "[api ListProjects]")
}

func (p *Projects) Get(ctx context.Context, id int64) (models.Project, error) {
	res, err := get[models.Project](ctx, p.t, fmt.Sprintf("/projects/%d", id))
	return res, wrap(err, "[api GetProject] id %d", id)
}

func (p *Projects) Create(ctx context.Context, data models.CreateProjectData) (models.Project, error) {
	res, err := post[models.Project](ctx, p.t, "/projects", data)
	return res, wrap(err, "[api CreateProject]")
}

func (p *Projects) Update(ctx context.Context, id int64, data models.UpdateProjectData) (models.Project, error) {
	res, err := put[models.Project](ctx, p.t, fmt.Sprintf("/projects/%d", id), data)
	return res, wrap(err, "[api UpdateProject] id %d", id)
}

func (p *Projects) Delete(ctx context.Context, id int64) error {
	return wrap(transport.Delete(ctx, p.t, fmt.Sprintf("/projects/%d", id)), "[api DeleteProject] id %d", id)
}

func (p *Projects) Archive(ctx context.Context, id int64) error {
	return wrap(send(ctx, p.t, http.MethodPost, fmt.Sprintf("/projects/%d/archive", id), nil), "[api ArchiveProject] id %d", id)
}

func (p *Projects) Unarchive(ctx context.Context, id int64) error {
	return wrap(send(ctx, p.t, http.MethodPost, fmt.Sprintf("/projects/%d/unarchive", id), nil), "[api UnarchiveProject] id %d", id)
}

func (p *Projects) Tasks(ctx context.Context, id int64, page int) (*transport.PageEnvelope[models.Task], error) {
	res, err := transport.GetPage[models.Task](ctx, p.t, fmt.Sprintf("/projects/%d/tasks", id), transport.WithQuery(models.PageQuery(page)))
	return res, wrap(err, "[api ProjectTasks] id %d", id)
}

func (p *Projects) Members(ctx context.Context, id int64) ([]models.ProjectMember, error) {
	res, err := get[[]models.ProjectMember](ctx, p.t, fmt.Sprintf("/projects/%d/members", id))
	return res, wrap(err, "[api ProjectMembers] id %d", id)
}

func (p *Projects) AddMember(ctx context.Context, id, userID int64, role string) error {
	body := map[string]any{"user_id": userID, "role": role}
	return wrap(send(ctx, p.t, http.MethodPost, fmt.Sprintf("/projects/%d/members", id), body), "[api AddMember] project %d user %d", id, userID)
}

func (p *Projects) UpdateMemberRole(ctx context.Context, id, userID int64, role string) error {
	body := map[string]any{"role": role}
	return wrap(send(ctx, p.t, http.MethodPut, fmt.Sprintf("/projects/%d/members/%d", id, userID), body), "[api UpdateMemberRole] project %d user %d", id, userID)
}

func (p *Projects) RemoveMember(ctx context.Context, id, userID int64) error {
	return wrap(transport.Delete(ctx, p.t, fmt.Sprintf("/projects/%d/members/%d", id, userID)), "[api RemoveMember] project %d user %d", id, userID)
}
