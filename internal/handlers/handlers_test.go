package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/justsurfingit/jobtrack-dashboard/internal/dashboard"
	"github.com/justsurfingit/jobtrack-dashboard/internal/models"
	"github.com/justsurfingit/jobtrack-dashboard/internal/services"
)

type staticSource struct {
	jobs      []models.Job
	lastToken string
}

func (s *staticSource) FetchJobs(ctx context.Context, token string) ([]models.Job, error) {
	s.lastToken = token
	return s.jobs, nil
}

func sampleJobs() []models.Job {
	var jobs []models.Job
	add := func(n int, company string, status models.Status, applied string) {
		for i := 0; i < n; i++ {
			jobs = append(jobs, models.Job{
				ID:          company + string(rune('a'+i)),
				Title:       "Engineer",
				CompanyName: company,
				Status:      status,
				DateApplied: models.MustDate(applied),
				Deadline:    models.MustDate("2024-12-31"),
			})
		}
	}
	add(12, "Acme", models.StatusUnderReview, "2024-03-10")
	add(1, "Globex", models.StatusApplicationAccepted, "2024-04-02")
	add(2, "Initech", models.StatusApplicationDeclined, "2024-05-20")
	return jobs
}

func newTestRouter(src services.JobSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	history := services.NewHistoryService(nil)
	svc := services.NewDashboardService(src, services.NewJobFeed(), history, dashboard.DefaultPageSize)
	return NewRouter(
		NewDashboardHandler(svc, history, &services.InsightService{}),
		NewApplicationHandler(svc),
		nil,
	)
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthAndStatusesArePublic(t *testing.T) {
	r := newTestRouter(&staticSource{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/statuses", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var statuses []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &statuses))
	assert.Len(t, statuses, len(models.AllStatuses))
	assert.Equal(t, "ApplicationSubmitted", statuses[0]["code"])
}

func TestDashboardRequiresToken(t *testing.T) {
	r := newTestRouter(&staticSource{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetDashboard(t *testing.T) {
	src := &staticSource{jobs: sampleJobs()}
	r := newTestRouter(src)

	w := get(t, r, "/api/v1/dashboard?page=2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test-token", src.lastToken)

	var d dashboard.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, 15, d.Summary.Total)
	assert.Equal(t, 6.67, d.Summary.SuccessRate)
	assert.Equal(t, 13.33, d.Summary.RejectionRate)
	assert.Equal(t, 2, d.Jobs.Page)
	assert.Len(t, d.Jobs.Items, 5)
	require.Len(t, d.Chart.Bars, 3)
	assert.Equal(t, "Acme", d.Chart.Bars[0].Company)
	assert.NotEmpty(t, d.FilterKey)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	bars := raw["chart"].(map[string]any)["bars"].([]any)
	assert.Equal(t, "hsl(45, 70%, 50%)", bars[1].(map[string]any)["color"])
}

func TestGetDashboard_SelectedCompanyResetsStalePage(t *testing.T) {
	r := newTestRouter(&staticSource{jobs: sampleJobs()})

	var first dashboard.Dashboard
	w := get(t, r, "/api/v1/dashboard?page=2")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	w = get(t, r, "/api/v1/dashboard?company=Initech&page=2&filterKey="+first.FilterKey)
	require.Equal(t, http.StatusOK, w.Code)

	var d dashboard.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, 1, d.Jobs.Page)
	assert.Equal(t, 2, d.Jobs.Total)
	require.Len(t, d.Chart.Bars, 1)
	assert.Equal(t, 2, d.Chart.Bars[0].Count)
	assert.Equal(t, 15, d.Summary.Total, "summary always covers every job")
}

func TestListApplications(t *testing.T) {
	r := newTestRouter(&staticSource{jobs: sampleJobs()})

	w := get(t, r, "/api/v1/applications?company=ACM&appliedFrom=2024-03-01&appliedTo=2024-03-31&page=2")
	require.Equal(t, http.StatusOK, w.Code)

	var apps dashboard.Applications
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apps))
	assert.Equal(t, 12, apps.Jobs.Total)
	assert.Equal(t, 2, apps.Jobs.PageCount)
	assert.Len(t, apps.Jobs.Items, 2)
	assert.False(t, apps.Jobs.HasNext)
}

func TestListApplications_BadQuery(t *testing.T) {
	r := newTestRouter(&staticSource{jobs: sampleJobs()})

	for _, q := range []string{
		"appliedFrom=03/01/2024",
		"match=fuzzy",
		"deadlineFrom=2024-05-01&deadlineTo=2024-04-01",
		"page=two",
	} {
		w := get(t, r, "/api/v1/applications?"+q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestExportApplications(t *testing.T) {
	r := newTestRouter(&staticSource{jobs: sampleJobs()})

	w := get(t, r, "/api/v1/applications/export.xlsx?status=declined")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "FilteredJobs.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Jobs")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "Initech", rows[1][1])
}

func TestGetChartPNG(t *testing.T) {
	r := newTestRouter(&staticSource{jobs: sampleJobs()})
	w := get(t, r, "/api/v1/dashboard/chart.png")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	empty := newTestRouter(&staticSource{})
	w = get(t, empty, "/api/v1/dashboard/chart.png")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetChartPNG_UsesDashboardFilters(t *testing.T) {
	jobs := sampleJobs()
	for i := 0; i < 3; i++ {
		jobs = append(jobs, models.Job{CompanyName: "Acme", Status: models.StatusApplicationDeclined})
	}
	r := newTestRouter(&staticSource{jobs: jobs})

	var d dashboard.Dashboard
	w := get(t, r, "/api/v1/dashboard?company=Acme&status=ApplicationDeclined")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	require.Len(t, d.Chart.Bars, 1)
	assert.Equal(t, 3, d.Chart.Bars[0].Count)

	w = get(t, r, "/api/v1/dashboard/chart.png?company=Acme&status=ApplicationDeclined")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = get(t, r, "/api/v1/dashboard/chart.png?company=Hooli")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetInsights_Disabled(t *testing.T) {
	r := newTestRouter(&staticSource{jobs: sampleJobs()})
	w := get(t, r, "/api/v1/dashboard/insights")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetHistory_Disabled(t *testing.T) {
	r := newTestRouter(&staticSource{})
	w := get(t, r, "/api/v1/dashboard/history")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"enabled":false,"snapshots":[]}`, w.Body.String())

	w = get(t, r, "/api/v1/dashboard/history?limit=1000")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
