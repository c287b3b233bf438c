package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cravefit/backend/config"
	"github.com/cravefit/backend/internal/database"
	"github.com/cravefit/backend/internal/middleware"
	"github.com/cravefit/backend/internal/server"
	"github.com/cravefit/backend/internal/service"
	"github.com/cravefit/backend/pkg/logger"
)

func main() {
	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load configuration", "error", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}

	s3cfg, err := config.NewS3Config(context.Background())
	if err != nil {
		// Uploads degrade to photo search only.
		log.Warnw("object storage unavailable, dish uploads disabled", "error", err)
	}

	authSvc := service.NewAuthService(db, cfg.JWTSecret)
	profileSvc := service.NewProfileService(db)
	mealSvc := service.NewMealService(db, profileSvc)
	quizSvc := service.NewQuizService(db)
	recipeSvc := service.NewRecipeAPIService(cfg.RecipeAPIURL, cfg.RecipeAPIKey, redisClient, log)
	photoSvc := service.NewPhotoService(cfg.PhotoAPIURL, cfg.PhotoAPIKey)
	imageSvc := service.NewImageService(db, photoSvc, s3cfg, log)
	statusSvc := service.NewStatusService(mealSvc, recipeSvc, log)

	srv := server.New(cfg, server.Services{
		Auth:               authSvc,
		Profile:            profileSvc,
		Meals:              mealSvc,
		Quiz:               quizSvc,
		Status:             statusSvc,
		Recipes:            recipeSvc,
		Images:             imageSvc,
		Recognizer:         service.NewRecognitionService(cfg.RecognitionAPIURL, cfg.RecognitionToken),
		Titles:             service.NewLLMService(cfg.OpenAIKey, cfg.OpenAIModel),
		RecognitionLimiter: middleware.NewRecognitionRateLimiter(redisClient),
	}, log)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalw("server error", "error", err)
		}
	case sig := <-quit:
		log.Infow("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server shutdown error", "error", err)
	}
	log.Infow("server stopped")
}
