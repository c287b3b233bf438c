package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cravefit/backend/config"
	"github.com/cravefit/backend/internal/api"
	"github.com/cravefit/backend/internal/middleware"
	"github.com/cravefit/backend/internal/service"
	"github.com/cravefit/backend/pkg/logger"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth       service.IAuthService
	Profile    service.IProfileService
	Meals      service.IMealService
	Quiz       service.IQuizService
	Status     *service.StatusService
	Recipes    service.RecipeSource
	Images     *service.ImageService
	Recognizer service.Recognizer
	Titles     service.TitleGenerator

	RecognitionLimiter *middleware.RateLimiter
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
	log    *logger.Logger
}

// New creates a server with all routes registered under /api/v1.
func New(cfg *config.Config, svcs Services, log *logger.Logger) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(svcs.Auth).RegisterRoutes(v1)
	api.NewProfileHandler(svcs.Profile, svcs.Auth).RegisterRoutes(v1)
	api.NewMealHandler(svcs.Meals, svcs.Titles, svcs.Images, svcs.Auth, log).RegisterRoutes(v1)
	api.NewQuizHandler(svcs.Quiz, svcs.Auth).RegisterRoutes(v1)
	api.NewStatusHandler(svcs.Status, svcs.Auth).RegisterRoutes(v1)
	api.NewRecipeHandler(svcs.Recipes, svcs.Meals, svcs.Images, svcs.Auth, log).RegisterRoutes(v1)
	api.NewImageHandler(svcs.Images, svcs.Recognizer, svcs.RecognitionLimiter, svcs.Auth, log).RegisterRoutes(v1)

	return &Server{
		router: router,
		cfg:    cfg,
		log:    log,
	}
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}

	s.log.Infow("server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
