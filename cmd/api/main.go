package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Revanth0912/Job-Select-AI/internal/catalog"
	"github.com/Revanth0912/Job-Select-AI/internal/config"
	"github.com/Revanth0912/Job-Select-AI/internal/handlers"
	"github.com/Revanth0912/Job-Select-AI/internal/matcher"
	"github.com/Revanth0912/Job-Select-AI/internal/repositories"
	"github.com/Revanth0912/Job-Select-AI/internal/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	candidateRepo := repositories.NewCandidateRepository(db)
	matchRepo := repositories.NewMatchRepository(db)

	storageService := services.NewStorageService(cfg.Ingest.ResumeFolder)
	if err := storageService.EnsureResumeDir(); err != nil {
		log.Fatal().Err(err).Msg("failed to create resume directory")
	}

	jobMatcher := matcher.New(catalog.Default())
	log.Info().Int("catalog_roles", jobMatcher.Catalog().Len()).Msg("job catalog loaded")

	pipeline := services.NewPipeline(candidateRepo, matchRepo, jobMatcher, cfg.Ingest.MinMatchScore)
	mailer := services.NewMailer(cfg.Mail)

	dashboardHandler := handlers.NewDashboardHandler(matchRepo)
	scoreHandler := handlers.NewScoreHandler(candidateRepo, matchRepo)
	statusHandler := handlers.NewStatusHandler(matchRepo)
	emailHandler := handlers.NewEmailHandler(mailer)
	uploadHandler := handlers.NewUploadHandler(storageService, pipeline, cfg.Storage.MaxFileSize)

	app := fiber.New(fiber.Config{
		AppName:      "Job Select API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/dashboard", dashboardHandler.HandleDashboard)
	api.Get("/scores/:candidateID/:jobTitle", scoreHandler.HandleGetScores)
	api.Post("/matches/status", statusHandler.HandleUpdateStatus)
	api.Post("/emails/interview", emailHandler.HandleSendInterviewEmail)
	api.Post("/resumes", uploadHandler.HandleUpload)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Job Select API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/dashboard",
				"GET /api/v1/scores/:candidateID/:jobTitle",
				"POST /api/v1/matches/status",
				"POST /api/v1/emails/interview",
				"POST /api/v1/resumes",
			},
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("server starting")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
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
