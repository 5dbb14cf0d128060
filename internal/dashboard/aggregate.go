// Package dashboard derives every view the dashboard and applications pages
// show from a raw job list. All functions here are pure: they take a snapshot,
// never modify it, and return freshly built results.
package dashboard

import (
	"math"

	"github.com/justsurfingit/jobtrack-dashboard/internal/models"
)

// StatusCount is one status card.
type StatusCount struct {
	Status models.Status `json:"status"`
	Label  string        `json:"label"`
	Count  int           `json:"count"`
}

// Milestone is a named count over the full job list.
type Milestone struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Count int    `json:"count"`
}

// AggregateResult is the summary block of the dashboard.
type AggregateResult struct {
	Total         int           `json:"total"`
	StatusCounts  []StatusCount `json:"status_counts"`
	Milestones    []Milestone   `json:"milestones"`
	SuccessRate   float64       `json:"success_rate"`
	RejectionRate float64       `json:"rejection_rate"`
}

type milestoneDef struct {
	id    int
	title string
	match func(models.Job) bool
}

const (
	MilestoneSubmitted = iota + 1
	MilestoneInterviews
	MilestoneOffers
)

// Order is fixed regardless of counts.
var milestoneDefs = []milestoneDef{
	{MilestoneSubmitted, "Applications Submitted", func(models.Job) bool { return true }},
	{MilestoneInterviews, "Interviews Scheduled", hasStatus(models.StatusInterviewScheduled)},
	{MilestoneOffers, "Job Offers Received", hasStatus(models.StatusApplicationAccepted)},
}

func hasStatus(s models.Status) func(models.Job) bool {
	return func(j models.Job) bool { return j.Status == s }
}

// Aggregate computes status counts, milestones and rates for jobs.
func Aggregate(jobs []models.Job) AggregateResult {
	res := AggregateResult{
		Total:        len(jobs),
		StatusCounts: CountByStatus(jobs),
		Milestones:   make([]Milestone, 0, len(milestoneDefs)),
	}

	for _, def := range milestoneDefs {
		res.Milestones = append(res.Milestones, Milestone{
			ID:    def.id,
			Title: def.title,
			Count: countWhere(jobs, def.match),
		})
	}

	res.SuccessRate = percent(countWhere(jobs, hasStatus(models.StatusApplicationAccepted)), len(jobs))
	res.RejectionRate = percent(countWhere(jobs, hasStatus(models.StatusApplicationDeclined)), len(jobs))
	return res
}

// CountByStatus counts jobs per status code in first-seen order.
func CountByStatus(jobs []models.Job) []StatusCount {
	counts := make([]StatusCount, 0)
	index := make(map[models.Status]int)

	for _, j := range jobs {
		i, ok := index[j.Status]
		if !ok {
			i = len(counts)
			index[j.Status] = i
			counts = append(counts, StatusCount{Status: j.Status, Label: j.Status.Label()})
		}
		counts[i].Count++
	}
	return counts
}

func countWhere(jobs []models.Job, match func(models.Job) bool) int {
	n := 0
	for _, j := range jobs {
		if match(j) {
			n++
		}
	}
	return n
}

// percent returns part/total as a percentage rounded to two decimals, 0 for an empty total.
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*100*100) / 100
}
