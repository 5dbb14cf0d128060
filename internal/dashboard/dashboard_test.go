package dashboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/jobtrack-dashboard/internal/models"
)

func manyJobs(n int, company string, status models.Status) []models.Job {
	jobs := make([]models.Job, 0, n)
	for i := 0; i < n; i++ {
		j := job(company, status)
		j.ID = fmt.Sprintf("%s-%d", company, i)
		jobs = append(jobs, j)
	}
	return jobs
}

func TestBuild_SummaryUsesRawListBreakdownUsesFiltered(t *testing.T) {
	raw := append(manyJobs(3, "Acme", models.StatusUnderReview),
		manyJobs(1, "Globex", models.StatusApplicationAccepted)...)

	d := Build(raw, Request{SelectedCompany: "Acme", Page: 1})

	assert.Equal(t, 4, d.Summary.Total)
	assert.Equal(t, 25.0, d.Summary.SuccessRate)
	assert.Equal(t, []StatusCount{
		{Status: models.StatusUnderReview, Label: "Job Under Review", Count: 3},
	}, d.StatusBreakdown)

	require.Len(t, d.Chart.Bars, 1)
	assert.Equal(t, 3, d.Chart.Bars[0].Count)

	assert.Equal(t, []CompanyColor{
		{Company: "Acme", Color: HSL{0, 70, 50}},
		{Company: "Globex", Color: HSL{45, 70, 50}},
	}, d.Companies)
	assert.Equal(t, 3, d.Jobs.Total)
}

func TestBuild_FilterKeyResetsPage(t *testing.T) {
	raw := manyJobs(23, "Acme", models.StatusUnderReview)

	first := Build(raw, Request{Page: 3})
	assert.Equal(t, 3, first.Jobs.Page)

	// Same criteria, key echoed back: the cursor is honoured.
	same := Build(raw, Request{Page: 3, FilterKey: first.FilterKey})
	assert.Equal(t, 3, same.Jobs.Page)

	// Status changed since the key was issued: back to page 1.
	changed := Build(raw, Request{
		Criteria:  FilterCriteria{Status: string(models.StatusUnderReview)},
		Page:      3,
		FilterKey: first.FilterKey,
	})
	assert.Equal(t, 1, changed.Jobs.Page)
	assert.NotEqual(t, first.FilterKey, changed.FilterKey)
}

func TestBuild_Empty(t *testing.T) {
	d := Build(nil, Request{Page: 5})
	assert.Equal(t, 0, d.Summary.Total)
	assert.Empty(t, d.Chart.Bars)
	assert.Empty(t, d.Jobs.Items)
	assert.Equal(t, 1, d.Jobs.Page)
	assert.False(t, d.Jobs.HasNext)
}

func TestListApplications(t *testing.T) {
	raw := append(manyJobs(12, "Initech", models.StatusUnderReview),
		manyJobs(2, "Hooli", models.StatusAssessment)...)

	apps := ListApplications(raw, Request{
		Criteria: FilterCriteria{CompanyName: "INI", Match: MatchContains},
		Page:     2,
	})
	assert.Equal(t, 12, apps.Jobs.Total)
	assert.Equal(t, 2, apps.Jobs.PageCount)
	assert.Len(t, apps.Jobs.Items, 2)
}

func TestRequest_SelectedCompanyOnlyPinsCompany(t *testing.T) {
	req := Request{
		Criteria:        FilterCriteria{Status: "review", Match: MatchContains},
		SelectedCompany: "Acme",
	}
	c := req.EffectiveCriteria()
	assert.Equal(t, MatchContains, c.Match)
	assert.True(t, c.CompanyExact)

	raw := append(manyJobs(2, "Acme", models.StatusUnderReview),
		manyJobs(1, "Acme", models.StatusAssessment)...)
	raw = append(raw, manyJobs(1, "acme corp", models.StatusUnderReview)...)

	d := Build(raw, req)
	assert.Equal(t, 2, d.Jobs.Total)
	require.Len(t, d.Chart.Bars, 1)
	assert.Equal(t, 2, d.Chart.Bars[0].Count)
}

func TestBuild_UnknownSelectedCompanyHasNoBar(t *testing.T) {
	d := Build(manyJobs(2, "Acme", models.StatusUnderReview), Request{SelectedCompany: "Nope"})
	assert.Empty(t, d.Chart.Bars)
	assert.Equal(t, 0, d.Jobs.Total)
}
