package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cravefit/backend/internal/models"
	"github.com/cravefit/backend/internal/nutrition"
)

var ErrInvalidBiometrics = errors.New("height, weight and age must be positive")

// UpdateProfileRequest carries the editable biometric and goal fields.
type UpdateProfileRequest struct {
	HeightCM         float64 `json:"height_cm" binding:"required,gt=0"`
	WeightKG         float64 `json:"weight_kg" binding:"required,gt=0"`
	Age              int     `json:"age" binding:"required,gt=0"`
	Gender           string  `json:"gender" binding:"required,oneof=male female"`
	Goal             string  `json:"goal"`
	TargetWeightKG   float64 `json:"target_weight_kg"`
	TimelineMonths   int     `json:"goal_timeline_months"`
	HealthPreference *int    `json:"health_preference"`
}

// GoalsResponse bundles the derived daily targets. Everything here is
// recomputed from the stored profile on every call; nothing is cached.
type GoalsResponse struct {
	Goals       nutrition.DailyGoals `json:"goals"`
	WaterML     int                  `json:"water_ml"`
	ExerciseGap int                  `json:"exercise_gap"`
	ExerciseMin int                  `json:"exercise_minutes"`
}

// ProfileService handles user profile and goal derivation
type ProfileService struct {
	db *gorm.DB
}

var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile creates or replaces the biometric profile for a user.
func (s *ProfileService) UpsertProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*models.UserProfile, error) {
	if req.HeightCM <= 0 || req.WeightKG <= 0 || req.Age <= 0 {
		return nil, ErrInvalidBiometrics
	}

	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = models.UserProfile{ID: uuid.New(), UserID: userID}
	}

	profile.HeightCM = req.HeightCM
	profile.WeightKG = req.WeightKG
	profile.Age = req.Age
	profile.Gender = req.Gender
	if req.Goal != "" {
		profile.Goal = req.Goal
	}
	profile.TargetWeightKG = req.TargetWeightKG
	profile.TimelineMonths = req.TimelineMonths
	if req.HealthPreference != nil {
		profile.HealthPreference = *req.HealthPreference
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Goals derives the daily calorie goal, macro split, water goal and, when the
// calorie floor kicks in, the exercise needed to close the gap.
func (s *ProfileService) Goals(ctx context.Context, userID uuid.UUID) (*GoalsResponse, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := toNutritionProfile(profile)
	_, gap := nutrition.CalcCalories(p)

	resp := &GoalsResponse{
		Goals:       nutrition.Goals(p),
		WaterML:     nutrition.WaterGoalML(profile.WeightKG),
		ExerciseGap: gap,
	}
	if gap > 0 {
		resp.ExerciseMin = nutrition.ExerciseMinutes(float64(gap), profile.WeightKG, 3.5)
	}
	return resp, nil
}

func toNutritionProfile(p *models.UserProfile) nutrition.Profile {
	return nutrition.Profile{
		HeightCM:       p.HeightCM,
		WeightKG:       p.WeightKG,
		Age:            p.Age,
		Gender:         p.Gender,
		Goal:           p.Goal,
		TargetWeightKG: p.TargetWeightKG,
		TimelineMonths: p.TimelineMonths,
	}
}
