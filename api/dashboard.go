package api

import (
	"context"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type Dashboard struct {
	t *transport.Client
}

func (d *Dashboard) Stats(ctx context.Context) (models.DashboardStats, error) {
	res, err := get[models.DashboardStats](ctx, d.t, "/dashboard/stats")
	return res, wrap(err, "[api DashboardStats]")
}

func (d *Dashboard) RecentProjects(ctx context.Context) ([]models.RecentProject, error) {
	res, err := get[[]models.RecentProject](ctx, d.t, "/dashboard/recent-projects")
	return res, wrap(err, "[api RecentProjects]")
}

func (d *Dashboard) RecentTasks(ctx context.Context) ([]models.RecentTask, error) {
	res, err := get[[]models.RecentTask](ctx, d.t, "/dashboard/recent-tasks")
	return res, wrap(err, "[api RecentTasks]")
}
