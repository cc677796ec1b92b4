package main

import (
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

	"mockmate/interview/internal/config"
	"mockmate/interview/internal/handlers"
	"mockmate/interview/internal/repositories"
	"mockmate/interview/internal/services"
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
	resumeRepo := repositories.NewResumeRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	evalRepo := repositories.NewEvaluationRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	roadmapRepo := repositories.NewRoadmapRepository(db)
	videoRepo := repositories.NewVideoRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	resumeParser := services.NewResumeParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize D-ID avatar service
	avatarService := services.NewAvatarService(services.DIDOptions{
		APIKey:         cfg.DID.APIKey,
		BaseURL:        cfg.DID.BaseURL,
		PresenterImage: cfg.DID.PresenterImage,
		VoiceID:        cfg.DID.VoiceID,
		PollInterval:   cfg.DID.PollInterval,
		PollTimeout:    cfg.DID.PollTimeout,
	})
	log.Println("✅ Avatar service initialized successfully")

	// Initialize transcriber
	transcriberService := services.NewTranscriberService(services.TranscriberOptions{
		APIKey:  cfg.Transcriber.APIKey,
		BaseURL: cfg.Transcriber.BaseURL,
		Model:   cfg.Transcriber.Model,
	})

	// Initialize interview pipeline
	sessionStore := services.NewSessionStore(interviewRepo)
	questionService := services.NewQuestionService(geminiService)
	evaluatorService := services.NewEvaluatorService(geminiService)
	reportService := services.NewReportService(geminiService)
	roadmapService := services.NewRoadmapService(geminiService)

	interviewService := services.NewInterviewService(
		sessionStore,
		resumeRepo,
		evalRepo,
		reportRepo,
		roadmapRepo,
		videoRepo,
		questionService,
		avatarService,
		evaluatorService,
		reportService,
		roadmapService,
	)
	log.Println("✅ Interview service initialized")

	// Initialize handlers
	interviewHandler := handlers.NewInterviewHandler(
		interviewService,
		transcriberService,
		"Anita (D-ID)",
		cfg.DID.VoiceID,
	)
	resumeHandler := handlers.NewResumeHandler(
		storageService,
		resumeParser,
		resumeRepo,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Mock Interview API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
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
	interview := app.Group("/api/interview")
	interview.Get("/voices", interviewHandler.HandleVoices)
	interview.Post("/answer", interviewHandler.HandleAnswer)
	interview.Post("/stop", interviewHandler.HandleStop)

	resume := app.Group("/api/resume")
	resume.Post("/upload", resumeHandler.HandleUpload)
	resume.Get("/", resumeHandler.HandleResumeRoot)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "🎯 AI Mock Interview API is running!",
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
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
