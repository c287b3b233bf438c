package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cravefit/backend/internal/models"
	"github.com/cravefit/backend/internal/nutrition"
)

// QuizService turns quiz submissions into craving profiles and keeps the
// answer history that powers the insight dashboard.
type QuizService struct {
	db *gorm.DB
}

var _ IQuizService = (*QuizService)(nil)

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// Submit derives the craving profile from the answers and persists the
// session. The profile itself is never stored; it is a pure function of the
// answers and is recomputed when needed. When the submission carries no
// health preference, the value saved on the user profile applies.
func (s *QuizService) Submit(ctx context.Context, userID uuid.UUID, answers nutrition.QuizAnswers, healthPreference *int) (*nutrition.CravingProfile, error) {
	pref := s.resolveHealthPreference(ctx, userID, healthPreference)
	profile := nutrition.GenerateCravingProfile(answers, pref)

	response := models.QuizResponse{
		ID:      uuid.New(),
		UserID:  userID,
		Mood:    answers.Mood,
		Texture: answers.Texture,
		Taste:   answers.Taste,
		Hunger:  answers.Hunger,
		Diet:    answers.Diet,
	}
	if err := s.db.WithContext(ctx).Create(&response).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

// resolveHealthPreference picks the submitted value when present, otherwise
// the one stored on the user profile, otherwise the neutral midpoint.
func (s *QuizService) resolveHealthPreference(ctx context.Context, userID uuid.UUID, submitted *int) int {
	if submitted != nil {
		return *submitted
	}
	var stored models.UserProfile
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&stored).Error; err == nil && stored.HealthPreference > 0 {
		return stored.HealthPreference
	}
	return 50
}

// Insights analyzes the rolling window of recent quiz answers together with
// the last week of daily logs to surface the dominant craving pattern and
// any nutrient shortfalls.
func (s *QuizService) Insights(ctx context.Context, userID uuid.UUID) (*nutrition.CravingInsight, error) {
	var responses []models.QuizResponse
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(10).
		Find(&responses).Error; err != nil {
		return nil, err
	}

	tastes := make([]string, 0, len(responses))
	for _, r := range responses {
		if r.Taste != "" {
			tastes = append(tastes, r.Taste)
		}
	}

	insight := nutrition.AnalyzeCravings(tastes, s.recentDeficiencies(ctx, userID))
	return &insight, nil
}

// recentDeficiencies averages the last 7 daily logs against the latest goal
// figures. Missing data yields no deficiencies rather than an error.
func (s *QuizService) recentDeficiencies(ctx context.Context, userID uuid.UUID) []nutrition.NutrientDeficiency {
	var logs []models.DailyLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(7).
		Find(&logs).Error; err != nil || len(logs) == 0 {
		return nil
	}

	var protein, fiber float64
	for _, l := range logs {
		protein += l.Protein
		fiber += l.Fiber
	}
	n := float64(len(logs))

	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil
	}
	goals := nutrition.Goals(toNutritionProfile(&profile))

	return nutrition.DetectDeficiencies(protein/n, float64(goals.Protein), fiber/n, float64(goals.Fiber))
}
