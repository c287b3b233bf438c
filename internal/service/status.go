package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cravefit/backend/internal/nutrition"
	"github.com/cravefit/backend/pkg/logger"
)

// StatusResult is the weekly classification plus the candidate recipes
// fetched for its window.
type StatusResult struct {
	nutrition.WeeklyStatus
	Recipes []nutrition.Candidate `json:"recipes"`
}

// StatusService classifies the trailing week of intake and fetches matching
// candidate recipes from the recipe collaborator.
type StatusService struct {
	meals   IMealService
	recipes RecipeSource
	log     *logger.Logger
}

func NewStatusService(meals IMealService, recipes RecipeSource, log *logger.Logger) *StatusService {
	return &StatusService{meals: meals, recipes: recipes, log: log}
}

// candidate count shown on the dashboard card.
const statusRecipeCount = 3

// Weekly classifies the last 7 days and attaches up to 3 candidate recipes
// matching the selected window. A collaborator failure leaves the list empty
// and is logged; the classification itself never fails on fetch errors.
func (s *StatusService) Weekly(ctx context.Context, userID uuid.UUID) (*StatusResult, error) {
	days, err := s.meals.WeeklyIntake(ctx, userID, time.Now().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	status := nutrition.ClassifyWeek(days)
	result := &StatusResult{WeeklyStatus: status}

	var candidates []nutrition.Candidate
	switch status.Query.Field {
	case nutrition.QueryCarbs:
		candidates, err = s.recipes.SearchByCarbs(ctx, status.Query.Min, status.Query.Max, statusRecipeCount)
	default:
		candidates, err = s.recipes.SearchByEnergy(ctx, status.Query.Min, status.Query.Max, statusRecipeCount)
	}
	if err != nil {
		s.log.Warnw("recipe lookup failed for weekly status", "state", status.State, "error", err)
		return result, nil
	}

	if len(candidates) > statusRecipeCount {
		candidates = candidates[:statusRecipeCount]
	}
	result.Recipes = candidates
	return result, nil
}
