package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobtrack-dashboard/internal/auth"
	"github.com/justsurfingit/jobtrack-dashboard/internal/dtos"
	"github.com/justsurfingit/jobtrack-dashboard/internal/export"
	"github.com/justsurfingit/jobtrack-dashboard/internal/services"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
	History   *services.HistoryService
	Insights  *services.InsightService
}

func NewDashboardHandler(d *services.DashboardService, h *services.HistoryService, i *services.InsightService) *DashboardHandler {
	return &DashboardHandler{Dashboard: d, History: h, Insights: i}
}

// GetDashboard is GET /dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var q dtos.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.Dashboard.Dashboard(c.Request.Context(), auth.Token(c), q.ToRequest()))
}

// GetHistory is GET /dashboard/history
func (h *DashboardHandler) GetHistory(c *gin.Context) {
	var q dtos.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	snaps, err := h.History.List(c.Request.Context(), auth.Owner(auth.Token(c)), q.Limit)
	if err != nil {
		log.Printf("[history] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"enabled":   h.History.Enabled(),
		"snapshots": snaps,
	})
}

// GetInsights is GET /dashboard/insights
func (h *DashboardHandler) GetInsights(c *gin.Context) {
	summary := h.Dashboard.Summary(c.Request.Context(), auth.Token(c))

	text, err := h.Insights.Summarize(c.Request.Context(), summary)
	if errors.Is(err, services.ErrInsightsDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("[insights] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI insight failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dtos.InsightResponse{Insight: text, Summary: summary})
}

// GetChartPNG is GET /dashboard/chart.png
func (h *DashboardHandler) GetChartPNG(c *gin.Context) {
	var q dtos.ChartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	series := h.Dashboard.Chart(c.Request.Context(), auth.Token(c), q.ToRequest())

	var buf bytes.Buffer
	if err := export.WriteChartPNG(&buf, series); err != nil {
		if errors.Is(err, export.ErrNoChartData) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No jobs to chart"})
			return
		}
		log.Printf("[chart] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render chart"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="JobsChart.png"`)
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
