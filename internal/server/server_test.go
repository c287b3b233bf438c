package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cravefit/backend/config"
	"github.com/cravefit/backend/internal/middleware"
	"github.com/cravefit/backend/internal/mocks"
	"github.com/cravefit/backend/internal/service"
	"github.com/cravefit/backend/internal/testhelpers"
	"github.com/cravefit/backend/pkg/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db := testhelpers.SetupTestDatabase(t)
	log := logger.NewNop()

	auth := service.NewAuthService(db, "test-secret")
	profiles := service.NewProfileService(db)
	meals := service.NewMealService(db, profiles)
	images := service.NewImageService(db, new(mocks.MockPhotoSearcher), nil, log)
	recipes := new(mocks.MockRecipeSource)

	cfg := &config.Config{ServerHost: "localhost", ServerPort: "8080", JWTSecret: "test-secret"}

	return New(cfg, Services{
		Auth:               auth,
		Profile:            profiles,
		Meals:              meals,
		Quiz:               service.NewQuizService(db),
		Status:             service.NewStatusService(meals, recipes, log),
		Recipes:            recipes,
		Images:             images,
		Recognizer:         new(mocks.MockRecognizer),
		Titles:             new(mocks.MockTitleGenerator),
		RecognitionLimiter: middleware.NewRecognitionRateLimiter(redis.NewClient(&redis.Options{Addr: "localhost:1"})),
	}, log)
}

func TestServer_HealthCheck(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/api/v1/profile",
		"/api/v1/meals",
		"/api/v1/progress/daily",
		"/api/v1/quiz/insights",
		"/api/v1/status",
		"/api/v1/recipes",
		"/api/v1/suggestions",
		"/api/v1/images/dish",
	} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestServer_AuthRoutesAreOpen(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	srv.router.ServeHTTP(w, req)

	// Bad request, not unauthorized: the route is reachable without a token.
	require.Equal(t, http.StatusBadRequest, w.Code)
}
