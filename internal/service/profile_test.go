package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cravefit/backend/internal/testhelpers"
)

func TestProfileService_UpsertCreatesThenUpdates(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewProfileService(db)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	created, err := svc.UpsertProfile(ctx, userID, &UpdateProfileRequest{
		HeightCM: 170, WeightKG: 65, Age: 28, Gender: "female", Goal: "weight loss",
	})
	require.NoError(t, err)
	assert.Equal(t, 65.0, created.WeightKG)

	updated, err := svc.UpsertProfile(ctx, userID, &UpdateProfileRequest{
		HeightCM: 170, WeightKG: 63, Age: 28, Gender: "female",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 63.0, updated.WeightKG)
	// An empty goal leaves the stored goal untouched.
	assert.Equal(t, "weight loss", updated.Goal)
}

func TestProfileService_UpsertRejectsBadBiometrics(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewProfileService(db)

	_, err := svc.UpsertProfile(context.Background(), uuid.New(), &UpdateProfileRequest{
		HeightCM: 0, WeightKG: 65, Age: 28, Gender: "female",
	})
	assert.ErrorIs(t, err, ErrInvalidBiometrics)
}

func TestProfileService_GoalsDerivation(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewProfileService(db)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.UpsertProfile(ctx, userID, &UpdateProfileRequest{
		HeightCM: 180, WeightKG: 80, Age: 30, Gender: "male", Goal: "maintain",
	})
	require.NoError(t, err)

	resp, err := svc.Goals(ctx, userID)
	require.NoError(t, err)

	// Mifflin-St Jeor at maintenance: 10*80 + 6.25*180 - 5*30 + 5 = 1780.
	assert.Equal(t, 1780, resp.Goals.Calories)
	assert.Equal(t, 96, resp.Goals.Protein)
	assert.Equal(t, 2800, resp.WaterML)
	assert.Zero(t, resp.ExerciseGap)
	assert.Zero(t, resp.ExerciseMin)
}

func TestProfileService_GoalsFloorProducesExercisePlan(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewProfileService(db)
	ctx := context.Background()
	userID := uuid.New()

	// Small person on an aggressive cut lands below the calorie floor.
	_, err := svc.UpsertProfile(ctx, userID, &UpdateProfileRequest{
		HeightCM: 150, WeightKG: 48, Age: 40, Gender: "female",
		Goal: "weight loss", TargetWeightKG: 42, TimelineMonths: 1,
	})
	require.NoError(t, err)

	resp, err := svc.Goals(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1200, resp.Goals.Calories)
	assert.Greater(t, resp.ExerciseGap, 0)
	assert.Greater(t, resp.ExerciseMin, 0)
}
