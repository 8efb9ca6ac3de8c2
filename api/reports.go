package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

// DefaultTrendDays is the window of completion trends when none is given.
const DefaultTrendDays = 30

type Reports struct {
	t *transport.Client
}

func (r *Reports) ProjectProgress(ctx context.Context, projectID int64) (models.ProjectProgress, error) {
	res, err := get[models.ProjectProgress](ctx, r.t, fmt.Sprintf("/projects/%d/reports/progress", projectID))
	return res, wrap(err, "[api ProjectProgress] project %d", projectID)
}

func (r *Reports) TeamWorkload(ctx context.Context, projectID int64) (models.TeamWorkload, error) {
	res, err := get[models.TeamWorkload](ctx, r.t, fmt.Sprintf("/projects/%d/reports/workload", projectID))
	return res, wrap(err, "[api TeamWorkload] project %d", projectID)
}

func (r *Reports) CompletionTrends(ctx context.Context, projectID int64, days int) (models.CompletionTrends, error) {
	if days <= 0 {
		days = DefaultTrendDays
	}
	q := url.Values{"days": {strconv.Itoa(days)}}
	res, err := get[models.CompletionTrends](ctx, r.t, fmt.Sprintf("/projects/%d/reports/trends", projectID), transport.WithQuery(q))
	return res, wrap(err, "[api CompletionTrends] project %d days %d", projectID, days)
}

func (r *Reports) Dashboard(ctx context.Context) (models.ReportDashboard, error) {
	res, err := get[models.ReportDashboard](ctx, r.t, "/reports/dashboard")
	return res, wrap(err, "[api ReportDashboard]")
}
