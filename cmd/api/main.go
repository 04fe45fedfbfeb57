package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"talenthub/matching-service/internal/config"
	"talenthub/matching-service/internal/handlers"
	"talenthub/matching-service/internal/repositories"
	"talenthub/matching-service/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	jobRepo := repositories.NewJobRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	evalRepo := repositories.NewEvaluationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	fetcher := services.NewResumeFetcher(cfg.Fetcher)

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	vectorStore, err := services.NewResumeVectorStore(cfg.Qdrant, geminiService)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := vectorStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	recommender := services.NewRecommendationScorer()
	keywordScorer := services.NewKeywordScorer(fetcher)
	llmScorer := services.NewLLMScorer(geminiService, fetcher, vectorStore, cfg.Worker.RetryMaxAttempts)
	pipeline := services.NewPoolPipeline(candidateRepo, cfg.Pool.ScanConcurrency)
	log.Println("✅ Scoring services initialized successfully")

	// Initialize evaluator + worker
	evaluatorService := services.NewEvaluatorService(
		evalRepo,
		jobRepo,
		candidateRepo,
		keywordScorer,
		llmScorer,
	)

	worker := services.NewWorker(
		evalRepo,
		evaluatorService,
		cfg.Worker.Concurrency,
	)

	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize handlers
	jobHandler := handlers.NewJobHandler(jobRepo)
	candidateHandler := handlers.NewCandidateHandler(candidateRepo, fetcher, vectorStore)
	matchHandler := handlers.NewMatchHandler(evalRepo, jobRepo, candidateRepo, recommender, worker)
	poolHandler := handlers.NewPoolHandler(pipeline)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Candidate Matching API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/jobs", jobHandler.HandleCreate)
	api.Get("/jobs/:id", jobHandler.HandleGet)
	api.Post("/candidates", candidateHandler.HandleCreate)
	api.Get("/candidates/:id", candidateHandler.HandleGet)
	api.Post("/match/recommendation", matchHandler.HandleRecommendationScore)
	api.Post("/match/evaluate", matchHandler.HandleEvaluate)
	api.Get("/match/result/:id", matchHandler.HandleGetResult)
	api.Post("/pool/search", poolHandler.HandleSearch)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Candidate Matching API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/jobs",
				"POST /api/v1/candidates",
				"POST /api/v1/match/recommendation",
				"POST /api/v1/match/evaluate",
				"GET /api/v1/match/result/:id",
				"POST /api/v1/pool/search",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
