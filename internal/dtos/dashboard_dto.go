package dtos

import (
	"errors"
	"fmt"

	"github.com/justsurfingit/jobtrack-dashboard/internal/dashboard"
	"github.com/justsurfingit/jobtrack-dashboard/internal/models"
)

// DashboardQuery is the query string of GET /dashboard.
type DashboardQuery struct {
	Company   string `form:"company"`
	Status    string `form:"status"`
	Page      int    `form:"page"`
	FilterKey string `form:"filterKey"`
}

func (q DashboardQuery) ToRequest() dashboard.Request {
	return dashboard.Request{
		Criteria:        dashboard.FilterCriteria{Status: q.Status, Match: dashboard.MatchExact},
		SelectedCompany: q.Company,
		Page:            q.Page,
		FilterKey:       q.FilterKey,
	}
}

// ApplicationsQuery is the query string of GET /applications and its export.
type ApplicationsQuery struct {
	Company      string `form:"company"`
	Status       string `form:"status"`
	Match        string `form:"match" binding:"omitempty,oneof=exact contains"`
	AppliedFrom  string `form:"appliedFrom" binding:"omitempty,datetime=2006-01-02"`
	AppliedTo    string `form:"appliedTo" binding:"omitempty,datetime=2006-01-02"`
	DeadlineFrom string `form:"deadlineFrom" binding:"omitempty,datetime=2006-01-02"`
	DeadlineTo   string `form:"deadlineTo" binding:"omitempty,datetime=2006-01-02"`
	Page         int    `form:"page"`
	FilterKey    string `form:"filterKey"`
}

// ToRequest converts the query. The search box matches loosely unless the
// caller asks for exact matching.
func (q ApplicationsQuery) ToRequest() (dashboard.Request, error) {
	applied, err := dateRange("appliedFrom", q.AppliedFrom, "appliedTo", q.AppliedTo)
	if err != nil {
		return dashboard.Request{}, err
	}
	deadline, err := dateRange("deadlineFrom", q.DeadlineFrom, "deadlineTo", q.DeadlineTo)
	if err != nil {
		return dashboard.Request{}, err
	}

	match := dashboard.MatchContains
	if q.Match != "" {
		match = dashboard.MatchMode(q.Match)
	}

	return dashboard.Request{
		Criteria: dashboard.FilterCriteria{
			CompanyName: q.Company,
			Status:      q.Status,
			DateApplied: applied,
			Deadline:    deadline,
			Match:       match,
		},
		Page:      q.Page,
		FilterKey: q.FilterKey,
	}, nil
}

func dateRange(fromName, from, toName, to string) (dashboard.DateRange, error) {
	var r dashboard.DateRange
	var err error
	if r.From, err = models.ParseDate(from); err != nil {
		return r, fmt.Errorf("%s: %w", fromName, err)
	}
	if r.To, err = models.ParseDate(to); err != nil {
		return r, fmt.Errorf("%s: %w", toName, err)
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return r, errors.New(fromName + " must not be after " + toName)
	}
	return r, nil
}

// HistoryQuery is the query string of GET /dashboard/history.
type HistoryQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ChartQuery is the query string of GET /dashboard/chart.png. It takes the
// same filters as the dashboard so the image matches what is on screen.
type ChartQuery struct {
	Company string `form:"company"`
	Status  string `form:"status"`
}

func (q ChartQuery) ToRequest() dashboard.Request {
	return DashboardQuery{Company: q.Company, Status: q.Status}.ToRequest()
}

// StatusOption is one entry of GET /statuses.
type StatusOption struct {
	Code  models.Status `json:"code"`
	Label string        `json:"label"`
}

// InsightResponse is the body of GET /dashboard/insights.
type InsightResponse struct {
	Insight string                    `json:"insight"`
	Summary dashboard.AggregateResult `json:"summary"`
}
