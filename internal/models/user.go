package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserProfile holds the biometrics and goal settings the goal model derives
// calorie and macro targets from. The derivation layer treats it as read-only
// input; only the profile form mutates it.
type UserProfile struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	HeightCM         float64        `gorm:"not null" json:"height_cm"`
	WeightKG         float64        `gorm:"not null" json:"weight_kg"`
	Age              int            `gorm:"not null" json:"age"`
	Gender           string         `gorm:"size:10;not null" json:"gender"` // male or female
	Goal             string         `gorm:"size:50;not null;default:'maintain'" json:"goal"`
	TargetWeightKG   float64        `json:"target_weight_kg"`
	TimelineMonths   int            `json:"goal_timeline_months"`
	HealthPreference int            `gorm:"default:50" json:"health_preference"` // 0-100
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
