package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cravefit/backend/internal/models"
	"github.com/cravefit/backend/internal/nutrition"
	"github.com/cravefit/backend/internal/service"
)

// MockMealService mocks IMealService for handler tests.
type MockMealService struct {
	mock.Mock
}

func (m *MockMealService) AddMeal(ctx context.Context, meal *models.Meal) (*models.Meal, error) {
	args := m.Called(ctx, meal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealService) ListMeals(ctx context.Context, userID uuid.UUID, date string) ([]models.Meal, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	args := m.Called(ctx, userID, mealID)
	return args.Error(0)
}

func (m *MockMealService) DailyProgress(ctx context.Context, userID uuid.UUID, date string) (*service.DailyProgress, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DailyProgress), args.Error(1)
}

func (m *MockMealService) WeeklyIntake(ctx context.Context, userID uuid.UUID, endDate string) ([]nutrition.DayIntake, error) {
	args := m.Called(ctx, userID, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]nutrition.DayIntake), args.Error(1)
}

func (m *MockMealService) AddWater(ctx context.Context, userID uuid.UUID, date string, amountML int) error {
	args := m.Called(ctx, userID, date, amountML)
	return args.Error(0)
}

func (m *MockMealService) WaterTotal(ctx context.Context, userID uuid.UUID, date string) (int, error) {
	args := m.Called(ctx, userID, date)
	return args.Int(0), args.Error(1)
}

func (m *MockMealService) RemainingBudget(ctx context.Context, userID uuid.UUID, date string) (nutrition.MacroBudget, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(nutrition.MacroBudget), args.Error(1)
}

var _ service.IMealService = (*MockMealService)(nil)
