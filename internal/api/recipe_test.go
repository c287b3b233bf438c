package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cravefit/backend/internal/middleware"
	"github.com/cravefit/backend/internal/mocks"
	"github.com/cravefit/backend/internal/nutrition"
	"github.com/cravefit/backend/pkg/logger"
)

// staticValidator accepts any token and returns a fixed identity.
type staticValidator struct {
	userID uuid.UUID
}

func (v staticValidator) ValidateToken(string) (*middleware.TokenClaims, error) {
	if v.userID == uuid.Nil {
		return nil, errors.New("invalid token")
	}
	return &middleware.TokenClaims{UserID: v.userID, Email: "test@example.com"}, nil
}

func setupRecipeRouter(t *testing.T, recipes *mocks.MockRecipeSource, meals *MockMealService, images *mocks.MockImageResolver) (*gin.Engine, uuid.UUID) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	router := gin.New()
	handler := NewRecipeHandler(recipes, meals, images, staticValidator{userID: userID}, logger.NewNop())
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router, userID
}

func authedGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer any-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecipeHandler_RequiresAuth(t *testing.T) {
	router, _ := setupRecipeRouter(t, new(mocks.MockRecipeSource), new(MockMealService), new(mocks.MockImageResolver))

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecipeHandler_List(t *testing.T) {
	recipes := new(mocks.MockRecipeSource)
	recipes.On("List", mock.Anything, 1, 20).
		Return([]nutrition.Candidate{{ID: "1", Title: "Lentil soup"}}, nil)

	router, _ := setupRecipeRouter(t, recipes, new(MockMealService), new(mocks.MockImageResolver))
	w := authedGet(router, "/api/v1/recipes")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []nutrition.Candidate `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, "Lentil soup", resp.Recipes[0].Title)
}

func TestRecipeHandler_DetailEndpoints(t *testing.T) {
	recipes := new(mocks.MockRecipeSource)
	recipes.On("Ingredients", mock.Anything, "42").Return([]string{"2 cups lentils"}, nil)
	recipes.On("Instructions", mock.Anything, "42").Return([]string{"Simmer"}, nil)

	router, _ := setupRecipeRouter(t, recipes, new(MockMealService), new(mocks.MockImageResolver))

	assert.Equal(t, http.StatusOK, authedGet(router, "/api/v1/recipes/42/ingredients").Code)
	assert.Equal(t, http.StatusOK, authedGet(router, "/api/v1/recipes/42/steps").Code)
	recipes.AssertExpectations(t)
}

func TestRecipeHandler_SuggestionsFilterAndEnrich(t *testing.T) {
	recipes := new(mocks.MockRecipeSource)
	meals := new(MockMealService)
	images := new(mocks.MockImageResolver)

	meals.On("RemainingBudget", mock.Anything, mock.Anything, mock.Anything).
		Return(nutrition.MacroBudget{Calories: 800, Protein: 40, Carbs: 90, Fats: 30, Fiber: 15}, nil)
	recipes.On("List", mock.Anything, 1, 30).Return([]nutrition.Candidate{
		{ID: "1", Title: "Big feast", Protein: 90},
		{ID: "2", Title: "Grilled chicken", Protein: 35},
		{ID: "3", Title: "Tofu bowl", Protein: 20, ImageURL: "https://img.example/tofu.jpg"},
	}, nil)
	images.On("ResolveDishImage", mock.Anything, "Grilled chicken").
		Return("https://img.example/chicken.jpg", nil)

	router, _ := setupRecipeRouter(t, recipes, meals, images)
	w := authedGet(router, "/api/v1/suggestions?category=protein")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Suggestions []nutrition.Candidate `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 2)
	assert.Equal(t, "Grilled chicken", resp.Suggestions[0].Title)
	assert.Equal(t, "https://img.example/chicken.jpg", resp.Suggestions[0].ImageURL)
	// Already-populated image URLs are left alone.
	assert.Equal(t, "https://img.example/tofu.jpg", resp.Suggestions[1].ImageURL)
	images.AssertExpectations(t)
}

func TestRecipeHandler_SuggestionsDegradeOnPoolFailure(t *testing.T) {
	recipes := new(mocks.MockRecipeSource)
	meals := new(MockMealService)

	meals.On("RemainingBudget", mock.Anything, mock.Anything, mock.Anything).
		Return(nutrition.MacroBudget{Calories: 800}, nil)
	recipes.On("List", mock.Anything, 1, 30).Return(nil, errors.New("collaborator down"))

	router, _ := setupRecipeRouter(t, recipes, meals, new(mocks.MockImageResolver))
	w := authedGet(router, "/api/v1/suggestions")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Suggestions []nutrition.Candidate `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Suggestions)
}

func TestRecipeHandler_SuggestionsImageFailureIsSoft(t *testing.T) {
	recipes := new(mocks.MockRecipeSource)
	meals := new(MockMealService)
	images := new(mocks.MockImageResolver)

	meals.On("RemainingBudget", mock.Anything, mock.Anything, mock.Anything).
		Return(nutrition.MacroBudget{Calories: 800}, nil)
	recipes.On("List", mock.Anything, 1, 30).
		Return([]nutrition.Candidate{{ID: "1", Title: "Soup", Calories: 300}}, nil)
	images.On("ResolveDishImage", mock.Anything, "Soup").
		Return("", errors.New("photo service down"))

	router, _ := setupRecipeRouter(t, recipes, meals, images)
	w := authedGet(router, "/api/v1/suggestions?category=quick")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Suggestions []nutrition.Candidate `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 1)
	assert.Empty(t, resp.Suggestions[0].ImageURL)
}
