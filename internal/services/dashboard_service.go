package services

import (
	"context"
	"log"

	"github.com/justsurfingit/jobtrack-dashboard/internal/auth"
	"github.com/justsurfingit/jobtrack-dashboard/internal/dashboard"
	"github.com/justsurfingit/jobtrack-dashboard/internal/models"
)

// JobSource fetches a user's raw job list.
type JobSource interface {
	FetchJobs(ctx context.Context, token string) ([]models.Job, error)
}

// DashboardService fetches the caller's jobs and derives the views from them.
type DashboardService struct {
	Source   JobSource
	Feed     *JobFeed
	History  *HistoryService
	PageSize int
}

func NewDashboardService(src JobSource, feed *JobFeed, history *HistoryService, pageSize int) *DashboardService {
	return &DashboardService{
		Source:   src,
		Feed:     feed,
		History:  history,
		PageSize: pageSize,
	}
}

// Jobs returns the latest job list for token. A failed fetch yields an empty
// list: the failure is logged, never surfaced as an error.
func (s *DashboardService) Jobs(ctx context.Context, token string) []models.Job {
	jobs, _ := s.fetch(ctx, token)
	return jobs
}

// fetch is Jobs plus whether the upstream answered.
func (s *DashboardService) fetch(ctx context.Context, token string) ([]models.Job, bool) {
	owner := auth.Owner(token)
	ticket := s.Feed.Begin(owner)

	jobs, err := s.Source.FetchJobs(ctx, token)
	if err != nil {
		s.Feed.Abandon(owner)
		log.Printf("[jobs] ⚠️ fetch failed, serving empty list: %v", err)
		return []models.Job{}, false
	}
	return s.Feed.Commit(owner, ticket, jobs), true
}

// Dashboard builds the dashboard view and records the summary in the history.
// An empty list served in place of a failed fetch is not recorded.
func (s *DashboardService) Dashboard(ctx context.Context, token string, req dashboard.Request) dashboard.Dashboard {
	req.PageSize = s.PageSize
	jobs, ok := s.fetch(ctx, token)
	d := dashboard.Build(jobs, req)
	if !ok {
		return d
	}

	if written, err := s.History.Record(ctx, auth.Owner(token), d.Summary); err != nil {
		log.Printf("[history] ⚠️ could not record snapshot: %v", err)
	} else if written {
		log.Printf("[history] 🔖 snapshot recorded (total=%d)", d.Summary.Total)
	}
	return d
}

// Applications builds one page of the applications list.
func (s *DashboardService) Applications(ctx context.Context, token string, req dashboard.Request) dashboard.Applications {
	req.PageSize = s.PageSize
	return dashboard.ListApplications(s.Jobs(ctx, token), req)
}

// Filtered returns every job matching req, unpaginated, for exports.
func (s *DashboardService) Filtered(ctx context.Context, token string, req dashboard.Request) []models.Job {
	return dashboard.Filter(s.Jobs(ctx, token), req.EffectiveCriteria())
}

// Summary aggregates the caller's whole job list.
func (s *DashboardService) Summary(ctx context.Context, token string) dashboard.AggregateResult {
	return dashboard.Aggregate(s.Jobs(ctx, token))
}

// Chart builds the company chart exactly as the dashboard shows it for req.
func (s *DashboardService) Chart(ctx context.Context, token string, req dashboard.Request) dashboard.ChartSeries {
	req.PageSize = s.PageSize
	return dashboard.Build(s.Jobs(ctx, token), req).Chart
}
