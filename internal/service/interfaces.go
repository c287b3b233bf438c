package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cravefit/backend/internal/middleware"
	"github.com/cravefit/backend/internal/models"
	"github.com/cravefit/backend/internal/nutrition"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*middleware.TokenClaims, error)
}

// IProfileService defines the interface for profile and goal operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*models.UserProfile, error)
	Goals(ctx context.Context, userID uuid.UUID) (*GoalsResponse, error)
}

// IMealService defines the interface for meal logging and daily progress
type IMealService interface {
	AddMeal(ctx context.Context, meal *models.Meal) (*models.Meal, error)
	ListMeals(ctx context.Context, userID uuid.UUID, date string) ([]models.Meal, error)
	DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error
	DailyProgress(ctx context.Context, userID uuid.UUID, date string) (*DailyProgress, error)
	WeeklyIntake(ctx context.Context, userID uuid.UUID, endDate string) ([]nutrition.DayIntake, error)
	AddWater(ctx context.Context, userID uuid.UUID, date string, amountML int) error
	WaterTotal(ctx context.Context, userID uuid.UUID, date string) (int, error)
	RemainingBudget(ctx context.Context, userID uuid.UUID, date string) (nutrition.MacroBudget, error)
}

// IQuizService defines the interface for craving quiz operations
type IQuizService interface {
	Submit(ctx context.Context, userID uuid.UUID, answers nutrition.QuizAnswers, healthPreference *int) (*nutrition.CravingProfile, error)
	Insights(ctx context.Context, userID uuid.UUID) (*nutrition.CravingInsight, error)
}

// RecipeSource is the recipe/nutrition collaborator contract.
type RecipeSource interface {
	List(ctx context.Context, page, pageSize int) ([]nutrition.Candidate, error)
	SearchByEnergy(ctx context.Context, minKcal, maxKcal float64, limit int) ([]nutrition.Candidate, error)
	SearchByCarbs(ctx context.Context, minG, maxG float64, limit int) ([]nutrition.Candidate, error)
	Ingredients(ctx context.Context, recipeID string) ([]string, error)
	Instructions(ctx context.Context, recipeID string) ([]string, error)
}

// PhotoSearcher is the stock-photo collaborator contract: a text query
// resolves to a best-matching image URL.
type PhotoSearcher interface {
	SearchPhoto(ctx context.Context, query string) (string, error)
}

// Recognizer is the image-recognition collaborator contract. Implementations
// must bound their polling and respect ctx cancellation.
type Recognizer interface {
	RecognizeDish(ctx context.Context, image []byte) (string, error)
}

// TitleGenerator is the text-generation collaborator contract.
type TitleGenerator interface {
	SuggestMealTitles(ctx context.Context, description string) ([]string, error)
}

// ImageResolver resolves a dish name to an image URL, best effort.
type ImageResolver interface {
	ResolveDishImage(ctx context.Context, dishName string) (string, error)
}
