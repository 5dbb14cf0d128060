package handlers

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobtrack-dashboard/internal/auth"
	"github.com/justsurfingit/jobtrack-dashboard/internal/dashboard"
	"github.com/justsurfingit/jobtrack-dashboard/internal/dtos"
	"github.com/justsurfingit/jobtrack-dashboard/internal/export"
	"github.com/justsurfingit/jobtrack-dashboard/internal/models"
	"github.com/justsurfingit/jobtrack-dashboard/internal/services"
)

type ApplicationHandler struct {
	Dashboard *services.DashboardService
}

func NewApplicationHandler(d *services.DashboardService) *ApplicationHandler {
	return &ApplicationHandler{Dashboard: d}
}

// ListApplications is GET /applications
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	req, ok := bindApplicationsQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Dashboard.Applications(c.Request.Context(), auth.Token(c), req))
}

// ExportApplications is GET /applications/export.xlsx
func (h *ApplicationHandler) ExportApplications(c *gin.Context) {
	req, ok := bindApplicationsQuery(c)
	if !ok {
		return
	}
	jobs := h.Dashboard.Filtered(c.Request.Context(), auth.Token(c), req)

	var buf bytes.Buffer
	if err := export.WriteJobsXLSX(&buf, jobs); err != nil {
		log.Printf("[export] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="FilteredJobs.xlsx"`)
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}

// ListStatuses is GET /statuses
func ListStatuses(c *gin.Context) {
	out := make([]dtos.StatusOption, 0, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		out = append(out, dtos.StatusOption{Code: s, Label: s.Label()})
	}
	c.JSON(http.StatusOK, out)
}

// HealthCheck is GET /health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func bindApplicationsQuery(c *gin.Context) (dashboard.Request, bool) {
	var q dtos.ApplicationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return dashboard.Request{}, false
	}
	req, err := q.ToRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return dashboard.Request{}, false
	}
	return req, true
}
