package store

import (
	"context"
	"time"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/internal/errors"
	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

// TimeTrackingStore caches time entries and the running timer.
type TimeTrackingStore struct {
	*Collection[models.TimeEntry, models.TimeEntryFilter]
	api *api.TimeEntries
	now func() time.Time

	timer state
	// active is the running entry, nil when no timer runs.
	active *models.TimeEntry
}

func NewTimeTrackingStore(entries *api.TimeEntries, opts ...Option) *TimeTrackingStore {
	s := newSettings(opts)
	return &TimeTrackingStore{
		Collection: newCollection(collectionSpec[models.TimeEntry, models.TimeEntryFilter]{
			plural:   "time entries",
			singular: "time entry",
			list: func(ctx context.Context, f models.TimeEntryFilter, _ Page) ([]models.TimeEntry, transport.PageMeta, error) {
				return unpaged(entries.List(ctx, f))
			},
			get: entries.Get,
		}, s),
		api:   entries,
		now:   s.now,
		timer: state{log: s.logger.With().Str("store", "timer").Logger()},
	}
}

// FetchList, FetchOne and LoadMore clear a timer error so Err reports the newest failure.
func (s *TimeTrackingStore) FetchList(ctx context.Context, filters *models.TimeEntryFilter, resetPage bool) {
	s.clearTimerErr()
	s.Collection.FetchList(ctx, filters, resetPage)
}

func (s *TimeTrackingStore) FetchOne(ctx context.Context, id int64) {
	s.clearTimerErr()
	s.Collection.FetchOne(ctx, id)
}

func (s *TimeTrackingStore) LoadMore(ctx context.Context) {
	s.clearTimerErr()
	s.Collection.LoadMore(ctx)
}

func (s *TimeTrackingStore) Create(ctx context.Context, data models.CreateTimeEntryData) (models.TimeEntry, error) {
	s.clearTimerErr()
	return mutate(s.Collection, "Failed to create time entry", func() (models.TimeEntry, error) {
		return s.api.Create(ctx, data)
	}, s.prepend)
}

func (s *TimeTrackingStore) Update(ctx context.Context, id int64, data models.UpdateTimeEntryData) (models.TimeEntry, error) {
	s.clearTimerErr()
	return mutate(s.Collection, "Failed to update time entry", func() (models.TimeEntry, error) {
		return s.api.Update(ctx, id, data)
	}, s.replace)
}

func (s *TimeTrackingStore) Remove(ctx context.Context, id int64) error {
	s.clearTimerErr()
	return drop(s.Collection, "Failed to delete time entry", id, func() error {
		return s.api.Delete(ctx, id)
	})
}

// StartTimer starts a timer on taskID and makes it the active timer.
func (s *TimeTrackingStore) StartTimer(ctx context.Context, taskID int64, description string) (models.TimeEntry, error) {
	s.Collection.clearErr()
	done := s.timer.track()
	defer done()

	entry, err := s.api.Start(ctx, models.StartTimerData{TaskID: taskID, Description: description})
	if err != nil {
		return entry, s.timer.fail(err, "Failed to start timer")
	}
	set(&s.timer, &s.active, &entry)
	return entry, nil
}

// StopTimer stops the active timer, adds the finished entry to the front of the cache and
// clears the timer. It returns ErrNoActiveTimer when nothing runs.
func (s *TimeTrackingStore) StopTimer(ctx context.Context) (models.TimeEntry, error) {
	active, ok := s.ActiveTimer()
	if !ok {
		return models.TimeEntry{}, errors.ErrNoActiveTimer
	}
	s.Collection.clearErr()
	done := s.timer.track()
	defer done()

	entry, err := s.api.Stop(ctx, active.ID)
	if err != nil {
		return entry, s.timer.fail(err, "Failed to stop timer")
	}
	s.prepend(entry)
	set(&s.timer, &s.active, nil)
	return entry, nil
}

// FetchActiveTimer adopts the server's running timer. Failures leave the timer untouched.
func (s *TimeTrackingStore) FetchActiveTimer(ctx context.Context) {
	entry, err := s.api.Active(ctx)
	if err != nil {
		s.timer.log.Debug().Err(err).Msg("active timer unavailable")
		return
	}
	set(&s.timer, &s.active, entry)
}

func (s *TimeTrackingStore) ActiveTimer() (models.TimeEntry, bool) {
	active := read(&s.timer, &s.active)
	if active == nil {
		return models.TimeEntry{}, false
	}
	return *active, true
}

func (s *TimeTrackingStore) IsTimerRunning() bool {
	_, ok := s.ActiveTimer()
	return ok
}

// Elapsed is the whole seconds since the active timer started, 0 without one.
func (s *TimeTrackingStore) Elapsed() int64 {
	active, ok := s.ActiveTimer()
	if !ok {
		return 0
	}
	return int64(s.now().Sub(active.StartTime) / time.Second)
}

// TotalHoursToday sums the durations of cached entries that started today (UTC).
func (s *TimeTrackingStore) TotalHoursToday() float64 {
	today := s.now().UTC().Format(time.DateOnly)
	var seconds int64
	for _, e := range s.Items() {
		if e.StartTime.UTC().Format(time.DateOnly) == today {
			seconds += e.Duration
		}
	}
	return float64(seconds) / 3600
}

// Err reports the latest failure of either the entry list or the timer. Starting an action on
// one side clears the other side's error.
func (s *TimeTrackingStore) Err() string {
	if err := s.timer.Err(); err != "" {
		return err
	}
	return s.Collection.Err()
}

func (s *TimeTrackingStore) Loading() bool {
	return s.Collection.Loading() || s.timer.Loading()
}

func (s *TimeTrackingStore) Reset() {
	s.Collection.Reset()
	set(&s.timer, &s.active, nil)
	s.clearTimerErr()
}

func (s *TimeTrackingStore) clearTimerErr() {
	set(&s.timer, &s.timer.err, "")
}
