// FitTrack API
//
// REST API for tracking sleep, calorie intake, and workouts.
//
//	@title			FitTrack API
//	@version		1.0
//	@description	Track sleep, calorie intake, and workouts; weekly reports, charts, and LLM-backed advice.
//
//	@BasePath	/v1
//
//	@tag.name			records
//	@tag.description	Record writing and history endpoints
//
//	@tag.name			reports
//	@tag.description	Weekly report, digest, and chart endpoints
//
//	@tag.name			advice
//	@tag.description	LLM advice and motivation endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/fittrack/fittrack/internal/api"
	"github.com/fittrack/fittrack/internal/api/handler"
	"github.com/fittrack/fittrack/internal/config"
	"github.com/fittrack/fittrack/internal/domain"
	"github.com/fittrack/fittrack/internal/langfuse"
	"github.com/fittrack/fittrack/internal/llm"
	"github.com/fittrack/fittrack/internal/repository"
	"github.com/fittrack/fittrack/internal/seed"
	"github.com/fittrack/fittrack/internal/service"
	"github.com/fittrack/fittrack/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "fittrack-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.SleepRecord{}, &domain.CalorieRecord{}, &domain.WorkoutRecord{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repository
	recordRepo := repository.NewRecordRepository(db)

	// Initialize services
	recordService := service.NewRecordService(recordRepo)
	reportService := service.NewReportService(recordRepo)
	seriesService := service.NewSeriesService(recordRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIAdviceModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, advice endpoint will be unavailable")
	}

	// Load the advice prompt, falling back to the built-in template
	promptTemplate := langfuse.LoadAdvicePrompt(ctx, langfuse.PromptConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.AdvicePromptName,
		PromptLabel: cfg.AdvicePromptLabel,
	}, service.DefaultAdvicePrompt)

	adviceService := service.NewAdviceService(reportService, openaiClient, promptTemplate)

	// Initialize handlers
	recordHandler := handler.NewRecordHandler(recordService)
	reportHandler := handler.NewReportHandler(reportService)
	chartHandler := handler.NewChartHandler(seriesService)
	adviceHandler := handler.NewAdviceHandler(adviceService)

	// Setup router
	router := api.NewRouter(recordHandler, reportHandler, chartHandler, adviceHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
