package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-talentmatch-backend/config"
	_ "go-talentmatch-backend/docs" // Important for Swagger
	v1 "go-talentmatch-backend/internal/delivery/http/v1"
	"go-talentmatch-backend/internal/repository/postgres"
	"go-talentmatch-backend/internal/usecase"
	"go-talentmatch-backend/pkg/ai/gemini"
	"go-talentmatch-backend/pkg/database"
	"go-talentmatch-backend/pkg/logger"
	"go-talentmatch-backend/pkg/redis"
	"go-talentmatch-backend/pkg/storage"
)

// @title           TalentMatch Backend API
// @version         1.0
// @description     AI-assisted recruiting backend with automatic job/candidate matching.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting talentmatch backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Gemini oracle
	ctx := context.Background()
	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Log.Error("Failed to initialize Gemini client", "error", err)
		os.Exit(1)
	}
	scorer := gemini.NewScorer(geminiClient, logger.Log)
	toolbox := gemini.NewToolbox(geminiClient)

	// 6. Setup S3 uploader (optional)
	var uploader *storage.Uploader
	if cfg.S3Bucket != "" {
		uploader, err = storage.NewUploader(ctx, storage.Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			logger.Log.Error("Failed to initialize S3 uploader", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Log.Warn("S3 storage not configured - avatar uploads will be unavailable")
	}

	// 7. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)

	// 8. Setup UseCases
	validate := validator.New()
	matchUC := usecase.NewMatchUsecase(matchRepo, jobRepo, candidateRepo, scorer, logger.Log)
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret, logger.Log)
	jobUC := usecase.NewJobUsecase(jobRepo, matchRepo, matchUC, validate, logger.Log)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, matchRepo, matchUC, toolbox, validate, logger.Log)
	adminUC := usecase.NewAdminUsecase(userRepo, jobRepo, candidateRepo, matchRepo, logger.Log)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		JobUC:       jobUC,
		CandidateUC: candidateUC,
		MatchUC:     matchUC,
		AdminUC:     adminUC,
		Scorer:      scorer,
		Toolbox:     toolbox,
		Uploader:    uploader,
		Config:      cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
