package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/justsurfingit/jobtrack-dashboard/internal/models"
)

// MatchMode selects how company and status criteria compare against a job.
type MatchMode string

const (
	// MatchExact is case-sensitive equality. Used by the dashboard's company dropdown.
	MatchExact MatchMode = "exact"
	// MatchContains is case-insensitive substring matching. Used by the
	// applications search box.
	MatchContains MatchMode = "contains"
)

// DateRange is an inclusive range of calendar days. A zero bound is open.
type DateRange struct {
	From models.Date
	To   models.Date
}

func (r DateRange) IsSet() bool { return !r.From.IsZero() || !r.To.IsZero() }

// Contains reports whether d falls inside r. An absent d is never inside a set range.
func (r DateRange) Contains(d models.Date) bool {
	if !r.IsSet() {
		return true
	}
	if d.IsZero() {
		return false
	}
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}

// FilterCriteria is the set of constraints a view applies. Empty fields are unconstrained.
type FilterCriteria struct {
	CompanyName string
	Status      string
	DateApplied DateRange
	Deadline    DateRange
	Match       MatchMode
	// CompanyExact compares CompanyName case-sensitively whatever Match says.
	CompanyExact bool
}

// Key fingerprints the criteria. Two criteria with the same key select the same jobs,
// so a changed key means the pagination cursor has to go back to page 1.
func (c FilterCriteria) Key() string {
	mode := c.Match
	if mode == "" {
		mode = MatchExact
	}
	company, status := c.CompanyName, c.Status
	if mode == MatchContains {
		status = strings.ToLower(status)
		if c.CompanyExact {
			company = "=" + company
		} else {
			company = strings.ToLower(company)
		}
	}
	return fmt.Sprintf("%s|%q|%q|%s..%s|%s..%s", mode, company, status,
		c.DateApplied.From, c.DateApplied.To, c.Deadline.From, c.Deadline.To)
}

// Matches reports whether j satisfies every set criterion.
func (c FilterCriteria) Matches(j models.Job) bool {
	if c.CompanyName != "" && !c.companyMatch(j.CompanyName) {
		return false
	}
	if c.Status != "" && !c.textMatch(string(j.Status), c.Status) {
		return false
	}
	return c.DateApplied.Contains(j.DateApplied) && c.Deadline.Contains(j.Deadline)
}

func (c FilterCriteria) companyMatch(value string) bool {
	if c.CompanyExact {
		return value == c.CompanyName
	}
	return c.textMatch(value, c.CompanyName)
}

func (c FilterCriteria) textMatch(value, want string) bool {
	if c.Match == MatchContains {
		return strings.Contains(strings.ToLower(value), strings.ToLower(want))
	}
	return value == want
}

// Filter returns the jobs matching c, sorted by company name with
// English collation. Ties keep their original relative order.
func Filter(jobs []models.Job, c FilterCriteria) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if c.Matches(j) {
			out = append(out, j)
		}
	}

	// Collators keep internal buffers, so each call gets its own.
	col := collate.New(language.English)
	sort.SliceStable(out, func(a, b int) bool {
		return col.CompareString(out[a].CompanyName, out[b].CompanyName) < 0
	})
	return out
}
