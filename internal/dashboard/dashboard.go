package dashboard

import "github.com/justsurfingit/jobtrack-dashboard/internal/models"

// Request carries the caller's view state for one dashboard build.
type Request struct {
	Criteria FilterCriteria
	// SelectedCompany narrows the list and chart to one company. It is always
	// compared exactly; Criteria.Match still governs the status comparison.
	SelectedCompany string
	Page            int
	PageSize        int
	// FilterKey is the Key of the criteria the caller's Page belongs to.
	// If it no longer matches, the cursor goes back to page 1.
	FilterKey string
}

// EffectiveCriteria returns the effective criteria with SelectedCompany folded in.
func (r Request) EffectiveCriteria() FilterCriteria {
	c := r.Criteria
	if r.SelectedCompany != "" {
		c.CompanyName = r.SelectedCompany
		c.CompanyExact = true
	}
	return c
}

// ResolvePage is the page to serve for criteria c: the requested page, or 1
// when the criteria changed since that page was handed out.
func (r Request) ResolvePage(c FilterCriteria) int {
	if r.FilterKey != "" && r.FilterKey != c.Key() {
		return 1
	}
	return r.Page
}

// Dashboard is every derived view of one snapshot.
type Dashboard struct {
	Summary         AggregateResult  `json:"summary"`
	StatusBreakdown []StatusCount    `json:"status_breakdown"`
	Companies       []CompanyColor   `json:"companies"`
	Chart           ChartSeries      `json:"chart"`
	Jobs            Page[models.Job] `json:"jobs"`
	FilterKey       string           `json:"filter_key"`
}

// CompanyColor pairs a company with its assigned colour, for the filter dropdown.
type CompanyColor struct {
	Company string `json:"company"`
	Color   HSL    `json:"color"`
}

// Build derives the dashboard for raw in one pass. Milestones and rates cover
// the whole raw list; status cards, the job table and a selected-company chart
// cover the filtered list.
func Build(raw []models.Job, req Request) Dashboard {
	criteria := req.EffectiveCriteria()
	filtered := Filter(raw, criteria)
	colors := AssignColors(raw)

	companies := make([]CompanyColor, 0, len(colors.order))
	for _, name := range colors.order {
		c, _ := colors.Color(name)
		companies = append(companies, CompanyColor{Company: name, Color: c})
	}

	return Dashboard{
		Summary:         Aggregate(raw),
		StatusBreakdown: CountByStatus(filtered),
		Companies:       companies,
		Chart:           BuildChartSeries(raw, filtered, colors, req.SelectedCompany),
		Jobs:            Paginate(filtered, req.PageSize, req.ResolvePage(criteria)),
		FilterKey:       criteria.Key(),
	}
}

// Applications is the filtered, paginated list behind the applications view.
type Applications struct {
	Jobs      Page[models.Job] `json:"jobs"`
	FilterKey string           `json:"filter_key"`
}

// ListApplications filters and paginates raw for the applications view.
func ListApplications(raw []models.Job, req Request) Applications {
	criteria := req.EffectiveCriteria()
	return Applications{
		Jobs:      Paginate(Filter(raw, criteria), req.PageSize, req.ResolvePage(criteria)),
		FilterKey: criteria.Key(),
	}
}
