package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cravefit/backend/internal/models"
	"github.com/cravefit/backend/internal/nutrition"
)

// MealTotals is the macro sum over a day's meals, always derived by
// summation at read time.
type MealTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// DailyProgress is one day's meals, goals and derived totals.
type DailyProgress struct {
	Date   string               `json:"date"`
	Meals  []models.Meal        `json:"meals"`
	Goals  nutrition.DailyGoals `json:"goals"`
	Totals MealTotals           `json:"totals"`
}

// MealService handles meal logging and the per-day rollup.
type MealService struct {
	db      *gorm.DB
	profile IProfileService
}

var _ IMealService = (*MealService)(nil)

func NewMealService(db *gorm.DB, profile IProfileService) *MealService {
	return &MealService{db: db, profile: profile}
}

// AddMeal inserts a meal entry and rewrites the day's log from the meals
// table. There is no transaction across the two writes: a failed rollup
// heals on the next mutation because totals are always re-derived.
func (s *MealService) AddMeal(ctx context.Context, meal *models.Meal) (*models.Meal, error) {
	if meal.ID == uuid.Nil {
		meal.ID = uuid.New()
	}
	if meal.Date == "" {
		meal.Date = time.Now().Format("2006-01-02")
	}
	if meal.AteAt.IsZero() {
		meal.AteAt = time.Now()
	}

	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}

	s.recomputeDailyLog(ctx, meal.UserID, meal.Date)
	return meal, nil
}

// ListMeals returns the meals logged for a date, oldest first.
func (s *MealService) ListMeals(ctx context.Context, userID uuid.UUID, date string) ([]models.Meal, error) {
	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("ate_at asc").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// DeleteMeal removes a meal entry. Entries are never edited in place; the
// client replaces by delete plus reinsert.
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	var meal models.Meal
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&meal).Error; err != nil {
		return err
	}

	s.recomputeDailyLog(ctx, userID, meal.Date)
	return nil
}

// DailyProgress assembles a day view: stored meals, derived goals and
// freshly summed totals.
func (s *MealService) DailyProgress(ctx context.Context, userID uuid.UUID, date string) (*DailyProgress, error) {
	meals, err := s.ListMeals(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	var goals nutrition.DailyGoals
	if resp, err := s.profile.Goals(ctx, userID); err == nil {
		goals = resp.Goals
	}

	return &DailyProgress{
		Date:   date,
		Meals:  meals,
		Goals:  goals,
		Totals: sumMeals(meals),
	}, nil
}

// WeeklyIntake returns the trailing 7 days of logged calories vs goal,
// ending at endDate, for the behavioral classifier.
func (s *MealService) WeeklyIntake(ctx context.Context, userID uuid.UUID, endDate string) ([]nutrition.DayIntake, error) {
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		end = time.Now()
	}

	goalCalories := 0.0
	if resp, err := s.profile.Goals(ctx, userID); err == nil {
		goalCalories = float64(resp.Goals.Calories)
	}

	days := make([]nutrition.DayIntake, 0, 7)
	for i := 6; i >= 0; i-- {
		date := end.AddDate(0, 0, -i).Format("2006-01-02")

		var total float64
		row := s.db.WithContext(ctx).Model(&models.Meal{}).
			Where("user_id = ? AND date = ?", userID, date).
			Select("COALESCE(SUM(calories), 0)").
			Row()
		if err := row.Scan(&total); err != nil {
			return nil, err
		}

		days = append(days, nutrition.DayIntake{Calories: total, Goal: goalCalories})
	}
	return days, nil
}

// AddWater records a water intake event.
func (s *MealService) AddWater(ctx context.Context, userID uuid.UUID, date string, amountML int) error {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return s.db.WithContext(ctx).Create(&models.WaterLog{
		ID:       uuid.New(),
		UserID:   userID,
		Date:     date,
		AmountML: amountML,
	}).Error
}

// WaterTotal sums the day's water intake.
func (s *MealService) WaterTotal(ctx context.Context, userID uuid.UUID, date string) (int, error) {
	var total int
	row := s.db.WithContext(ctx).Model(&models.WaterLog{}).
		Where("user_id = ? AND date = ?", userID, date).
		Select("COALESCE(SUM(amount_ml), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// RemainingBudget derives today's leftover macro budget, each macro clamped
// at zero, for the suggestion filter.
func (s *MealService) RemainingBudget(ctx context.Context, userID uuid.UUID, date string) (nutrition.MacroBudget, error) {
	progress, err := s.DailyProgress(ctx, userID, date)
	if err != nil {
		return nutrition.MacroBudget{}, err
	}

	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}
	return nutrition.MacroBudget{
		Calories: clamp(float64(progress.Goals.Calories) - progress.Totals.Calories),
		Protein:  clamp(float64(progress.Goals.Protein) - progress.Totals.Protein),
		Carbs:    clamp(float64(progress.Goals.Carbs) - progress.Totals.Carbs),
		Fats:     clamp(float64(progress.Goals.Fat) - progress.Totals.Fat),
		Fiber:    clamp(float64(progress.Goals.Fiber) - progress.Totals.Fiber),
	}, nil
}

// recomputeDailyLog rewrites the daily_logs row for user+date from the meals
// table, upserting on the (user_id, date) conflict key. Best effort: the
// rollup is a read-side convenience and the next mutation repairs any miss.
func (s *MealService) recomputeDailyLog(ctx context.Context, userID uuid.UUID, date string) {
	meals, err := s.ListMeals(ctx, userID, date)
	if err != nil {
		return
	}
	totals := sumMeals(meals)

	goalCalories := 0.0
	if resp, err := s.profile.Goals(ctx, userID); err == nil {
		goalCalories = float64(resp.Goals.Calories)
	}

	entry := models.DailyLog{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         date,
		Calories:     totals.Calories,
		Protein:      totals.Protein,
		Carbs:        totals.Carbs,
		Fat:          totals.Fat,
		Fiber:        totals.Fiber,
		GoalCalories: goalCalories,
	}

	s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"calories", "protein", "carbs", "fat", "fiber", "goal_calories", "updated_at",
		}),
	}).Create(&entry)
}

func sumMeals(meals []models.Meal) MealTotals {
	var t MealTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
		t.Fiber += m.Fiber
	}
	return t
}
