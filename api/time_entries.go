package api

import (
	"context"
	"fmt"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type TimeEntries struct {
	t *transport.Client
}

func (s *TimeEntries) List(ctx context.Context, filter models.TimeEntryFilter) ([]models.TimeEntry, error) {
	res, err := get[[]models.TimeEntry](ctx, s.t, "/time-entries", transport.WithQuery(filter.Query()))
	return res, wrap(err, "[api ListTimeEntries]")
}

func (s *TimeEntries) Get(ctx context.Context, id int64) (models.TimeEntry, error) {
	res, err := get[models.TimeEntry](ctx, s.t, fmt.Sprintf("/time-entries/%d", id))
	return res, wrap(err, "[api GetTimeEntry] id %d", id)
}

func (s *TimeEntries) Create(ctx context.Context, data models.CreateTimeEntryData) (models.TimeEntry, error) {
	res, err := post[models.TimeEntry](ctx, s.t, "/time-entries", data)
	return res, wrap(err, "[api CreateTimeEntry] task %d", data.TaskID)
}

func (s *TimeEntries) Update(ctx context.Context, id int64, data models.UpdateTimeEntryData) (models.TimeEntry, error) {
	res, err := put[models.TimeEntry](ctx, s.t, fmt.Sprintf("/time-entries/%d", id), data)
	return res, wrap(err, "[api UpdateTimeEntry] id %d", id)
}

func (s *TimeEntries) Delete(ctx context.Context, id int64) error {
	return wrap(transport.Delete(ctx, s.t, fmt.Sprintf("/time-entries/%d", id)), "[api DeleteTimeEntry] id %d", id)
}

func (s *TimeEntries) Start(ctx context.Context, data models.StartTimerData) (models.TimeEntry, error) {
	res, err := post[models.TimeEntry](ctx, s.t, "/time-entries/start", data)
	return res, wrap(err, "[api StartTimer] task %d", data.TaskID)
}

func (s *TimeEntries) Stop(ctx context.Context, id int64) (models.TimeEntry, error) {
	res, err := post[models.TimeEntry](ctx, s.t, fmt.Sprintf("/time-entries/%d/stop", id), nil)
	return res, wrap(err, "[api StopTimer] id %d", id)
}

// Active returns the running entry, or nil when no timer is running.
func (s *TimeEntries) Active(ctx context.Context) (*models.TimeEntry, error) {
	res, err := get[*models.TimeEntry](ctx, s.t, "/time-entries/active")
	return res, wrap(err, "[api ActiveTimer]")
}

func (s *TimeEntries) Stats(ctx context.Context, filter models.TimeRangeFilter) (models.TimeStats, error) {
	res, err := get[models.TimeStats](ctx, s.t, "/time-entries/stats", transport.WithQuery(filter.Query()))
	return res, wrap(err, "[api TimeStats]")
}

func (s *TimeEntries) Timesheet(ctx context.Context, filter models.TimeRangeFilter) ([]models.TimesheetDay, error) {
	res, err := get[[]models.TimesheetDay](ctx, s.t, "/time-entries/timesheet", transport.WithQuery(filter.Query()))
	return res, wrap(err, "[api Timesheet] %s..%s", filter.StartDate, filter.EndDate)
}

func (s *TimeEntries) Report(ctx context.Context, filter models.TimeRangeFilter) ([]models.TimeReport, error) {
	res, err := get[[]models.TimeReport](ctx, s.t, "/time-entries/report", transport.WithQuery(filter.Query()))
	return res, wrap(err, "[api TimeReport] %s..%s", filter.StartDate, filter.EndDate)
}
