package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobtrack-dashboard/internal/auth"
)

// NewRouter wires every route under /api/v1. An empty allowedOrigins allows all origins.
func NewRouter(dash *DashboardHandler, apps *ApplicationHandler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	config := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.ExposeHeaders = []string{"Content-Disposition"}
	r.Use(cors.New(config))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)
		api.GET("/statuses", ListStatuses)
	}

	authed := api.Group("", auth.RequireBearer())
	{
		authed.GET("/dashboard", dash.GetDashboard)
		authed.GET("/dashboard/history", dash.GetHistory)
		authed.GET("/dashboard/insights", dash.GetInsights)
		authed.GET("/dashboard/chart.png", dash.GetChartPNG)

		authed.GET("/applications", apps.ListApplications)
		authed.GET("/applications/export.xlsx", apps.ExportApplications)
	}

	return r
}
