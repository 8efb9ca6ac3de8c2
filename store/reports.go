package store

import (
	"context"

	"github.com/jrsteele09/taskflow-client/api"
	"github.com/jrsteele09/taskflow-client/models"
)

type ReportStore struct {
	state
	api       *api.Reports
	trendDays int

	progress  *models.ProjectProgress
	workload  *models.TeamWorkload
	trends    *models.CompletionTrends
	dashboard *models.ReportDashboard
}

func NewReportStore(reports *api.Reports, opts ...Option) *ReportStore {
	s := newSettings(opts)
	return &ReportStore{
		state:     state{log: s.logger.With().Str("store", "reports").Logger()},
		api:       reports,
		trendDays: s.trendDays,
	}
}

func (s *ReportStore) FetchProjectProgress(ctx context.Context, projectID int64) (models.ProjectProgress, error) {
	return fetchReport(s, &s.progress, "Failed to fetch project progress", func() (models.ProjectProgress, error) {
		return s.api.ProjectProgress(ctx, projectID)
	})
}

func (s *ReportStore) FetchTeamWorkload(ctx context.Context, projectID int64) (models.TeamWorkload, error) {
	return fetchReport(s, &s.workload, "Failed to fetch team workload", func() (models.TeamWorkload, error) {
		return s.api.TeamWorkload(ctx, projectID)
	})
}

// FetchCompletionTrends covers the last days days, or the configured window when days is 0.
func (s *ReportStore) FetchCompletionTrends(ctx context.Context, projectID int64, days int) (models.CompletionTrends, error) {
	if days <= 0 {
		days = s.trendDays
	}
	return fetchReport(s, &s.trends, "Failed to fetch completion trends", func() (models.CompletionTrends, error) {
		return s.api.CompletionTrends(ctx, projectID, days)
	})
}

func (s *ReportStore) FetchDashboard(ctx context.Context) (models.ReportDashboard, error) {
	return fetchReport(s, &s.dashboard, "Failed to fetch dashboard data", func() (models.ReportDashboard, error) {
		return s.api.Dashboard(ctx)
	})
}

func (s *ReportStore) ProjectProgress() *models.ProjectProgress {
	return read(&s.state, &s.progress)
}

func (s *ReportStore) TeamWorkload() *models.TeamWorkload {
	return read(&s.state, &s.workload)
}

func (s *ReportStore) CompletionTrends() *models.CompletionTrends {
	return read(&s.state, &s.trends)
}

func (s *ReportStore) Dashboard() *models.ReportDashboard {
	return read(&s.state, &s.dashboard)
}

func (s *ReportStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = nil
	s.workload = nil
	s.trends = nil
	s.dashboard = nil
	s.err = ""
}

func fetchReport[T any](s *ReportStore, dst **T, fallback string, call func() (T, error)) (T, error) {
	done := s.track()
	defer done()

	v, err := call()
	if err != nil {
		return v, s.fail(err, fallback)
	}
	set(&s.state, dst, &v)
	return v, nil
}
