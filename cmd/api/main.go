package main

import (
	"context"
	"log"

	"github.com/justsurfingit/jobtrack-dashboard/internal/config"
	"github.com/justsurfingit/jobtrack-dashboard/internal/database"
	"github.com/justsurfingit/jobtrack-dashboard/internal/handlers"
	"github.com/justsurfingit/jobtrack-dashboard/internal/jobapi"
	"github.com/justsurfingit/jobtrack-dashboard/internal/services"
)

func main() {
	// 1. Load configuration (.env + environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// 2. History storage is optional
	history := services.NewHistoryService(nil)
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		history = services.NewHistoryService(database.NewSnapshotRepository(db))
	} else {
		log.Println("⚠️  DATABASE_URL not set, dashboard history disabled.")
	}

	// 3. Insights are optional too
	insights, err := services.NewInsightService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal("Failed to create insight service: ", err)
	}
	if !insights.Enabled() {
		log.Println("⚠️  GEMINI_API_KEY not set, insights disabled.")
	}

	// 4. Core services
	jobs := jobapi.NewClient(cfg.JobAPIBaseURL, cfg.JobAPITimeout)
	dashboardService := services.NewDashboardService(jobs, services.NewJobFeed(), history, cfg.PageSize)

	// 5. Handlers & router
	r := handlers.NewRouter(
		handlers.NewDashboardHandler(dashboardService, history, insights),
		handlers.NewApplicationHandler(dashboardService),
		cfg.AllowedOrigins,
	)

	log.Printf("🚀 Server starting on port %s (job API: %s)...", cfg.Port, cfg.JobAPIBaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
