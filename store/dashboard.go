package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/models"
)

type DashboardStore struct {
	state
	api *api.Dashboard

	stats          models.DashboardStats
	recentProjects []models.RecentProject
	recentTasks    []models.RecentTask
}

func NewDashboardStore(dashboard *api.Dashboard, opts ...Option) *DashboardStore {
	s := newSettings(opts)
	return &DashboardStore{
		state: state{log: s.logger.With().Str("store", "dashboard").Logger()},
		api:   dashboard,
	}
}

// FetchStats records failures in Err.
func (s *DashboardStore) FetchStats(ctx context.Context) {
	done := s.track()
	defer done()

	stats, err := s.api.Stats(ctx)
	if err != nil {
		_ = s.fail(err, "Failed to fetch dashboard stats")
		return
	}
	set(&s.state, &s.stats, stats)
}

// FetchRecentProjects keeps the previous list when the request fails.
func (s *DashboardStore) FetchRecentProjects(ctx context.Context) {
	projects, err := s.api.RecentProjects(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("recent projects unavailable")
		return
	}
	set(&s.state, &s.recentProjects, projects)
}

// FetchRecentTasks keeps the previous list when the request fails.
func (s *DashboardStore) FetchRecentTasks(ctx context.Context) {
	tasks, err := s.api.RecentTasks(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("recent tasks unavailable")
		return
	}
	set(&s.state, &s.recentTasks, tasks)
}

// FetchAll loads the stats and both recent lists concurrently.
func (s *DashboardStore) FetchAll(ctx context.Context) {
	done := s.track()
	defer done()

	var g errgroup.Group
	g.Go(func() error { s.FetchStats(ctx); return nil })
	g.Go(func() error { s.FetchRecentProjects(ctx); return nil })
	g.Go(func() error { s.FetchRecentTasks(ctx); return nil })
	_ = g.Wait()
}

func (s *DashboardStore) Stats() models.DashboardStats {
	return read(&s.state, &s.stats)
}

func (s *DashboardStore) RecentProjects() []models.RecentProject {
	return append([]models.RecentProject(nil), read(&s.state, &s.recentProjects)...)
}

func (s *DashboardStore) RecentTasks() []models.RecentTask {
	return append([]models.RecentTask(nil), read(&s.state, &s.recentTasks)...)
}

func (s *DashboardStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = models.DashboardStats{}
	s.recentProjects = nil
	s.recentTasks = nil
	s.err = ""
}
