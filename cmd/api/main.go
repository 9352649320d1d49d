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
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"smarthire/internal/config"
	"smarthire/internal/handlers"
	"smarthire/internal/logger"
	"smarthire/internal/services"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("config loaded", zap.String("env", cfg.Server.Env))

	// Storage and extraction
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zlog.Fatal("failed to create upload directory", zap.Error(err))
	}
	extractor := services.NewResumeExtractor()

	// Analysis tiers: fast provider, quality provider, keyword engine.
	// Missing credentials leave a tier unconfigured but never stop startup.
	ctx := context.Background()

	groqProvider := services.NewGroqProvider(services.GroqOptions{
		APIKey:         cfg.Groq.APIKey,
		BaseURL:        cfg.Groq.BaseURL,
		Model:          cfg.Groq.Model,
		MaxResumeChars: cfg.Groq.MaxResumeChars,
		Timeout:        cfg.Groq.Timeout,
	}, zlog)

	geminiProvider := services.NewGeminiProvider(ctx, services.GeminiOptions{
		APIKey:         cfg.Gemini.APIKey,
		Model:          cfg.Gemini.Model,
		MaxResumeChars: cfg.Gemini.MaxResumeChars,
		Timeout:        cfg.Gemini.Timeout,
	}, zlog)

	engine := services.NewScoringEngine(zlog)

	orchestrator := services.NewOrchestrator(engine, zlog, groqProvider, geminiProvider)
	zlog.Info("analysis tiers initialized",
		zap.Bool("groq_configured", groqProvider.Configured()),
		zap.Bool("gemini_configured", geminiProvider.Configured()),
	)

	// Handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		storageService,
		extractor,
		orchestrator,
		cfg.Storage.MaxFileSize,
		zlog,
	)
	healthHandler := handlers.NewHealthHandler(orchestrator)

	app := fiber.New(fiber.Config{
		AppName:      "SmartHire API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Content-Type, Authorization",
		AllowCredentials: true,
	}))

	// Routes
	app.Get("/health", healthHandler.HandleHealth)
	app.Post("/analyze-resume", analyzeHandler.HandleAnalyze)
	app.Post("/analyze-resume/basic", analyzeHandler.HandleAnalyzeBasic)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "SmartHire API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /health",
				"POST /analyze-resume",
				"POST /analyze-resume/basic",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
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
