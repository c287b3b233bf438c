package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cravefit/backend/internal/nutrition"
)

// MockRecipeSource is a mock implementation of the recipe collaborator
type MockRecipeSource struct {
	mock.Mock
}

func (m *MockRecipeSource) List(ctx context.Context, page, pageSize int) ([]nutrition.Candidate, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]nutrition.Candidate), args.Error(1)
}

func (m *MockRecipeSource) SearchByEnergy(ctx context.Context, minKcal, maxKcal float64, limit int) ([]nutrition.Candidate, error) {
	args := m.Called(ctx, minKcal, maxKcal, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]nutrition.Candidate), args.Error(1)
}

func (m *MockRecipeSource) SearchByCarbs(ctx context.Context, minG, maxG float64, limit int) ([]nutrition.Candidate, error) {
	args := m.Called(ctx, minG, maxG, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]nutrition.Candidate), args.Error(1)
}

func (m *MockRecipeSource) Ingredients(ctx context.Context, recipeID string) ([]string, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRecipeSource) Instructions(ctx context.Context, recipeID string) ([]string, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockPhotoSearcher is a mock implementation of the photo-search collaborator
type MockPhotoSearcher struct {
	mock.Mock
}

func (m *MockPhotoSearcher) SearchPhoto(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

// MockRecognizer is a mock implementation of the image-recognition collaborator
type MockRecognizer struct {
	mock.Mock
}

func (m *MockRecognizer) RecognizeDish(ctx context.Context, image []byte) (string, error) {
	args := m.Called(ctx, image)
	return args.String(0), args.Error(1)
}

// MockTitleGenerator is a mock implementation of the text-generation collaborator
type MockTitleGenerator struct {
	mock.Mock
}

func (m *MockTitleGenerator) SuggestMealTitles(ctx context.Context, description string) ([]string, error) {
	args := m.Called(ctx, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockImageResolver is a mock implementation of the dish-image resolver
type MockImageResolver struct {
	mock.Mock
}

func (m *MockImageResolver) ResolveDishImage(ctx context.Context, dishName string) (string, error) {
	args := m.Called(ctx, dishName)
	return args.String(0), args.Error(1)
}
