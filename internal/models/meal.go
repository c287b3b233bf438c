package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is one logged meal entry. Entries are created and deleted by explicit
// user action and never mutated in place; an edit is a delete plus reinsert.
type Meal struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_meals_user_date" json:"user_id"`
	Date      string         `gorm:"size:10;not null;index:idx_meals_user_date" json:"date"` // YYYY-MM-DD
	Name      string         `gorm:"size:255;not null" json:"name"`
	Calories  float64        `gorm:"not null" json:"calories"`
	Protein   float64        `json:"protein"`
	Carbs     float64        `json:"carbs"`
	Fat       float64        `json:"fat"`
	Fiber     float64        `json:"fiber"`
	AteAt     time.Time      `json:"time"`
	ImageURL  string         `gorm:"size:512" json:"image_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Meal) TableName() string {
	return "meals"
}

// DailyLog is the per-day rollup, one row per user and date. Totals here are
// always rewritten from the meals table on every mutation, never maintained
// incrementally, so a stale row heals on the next write.
type DailyLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_logs_user_date" json:"user_id"`
	Date         string    `gorm:"size:10;not null;uniqueIndex:idx_daily_logs_user_date" json:"date"`
	Calories     float64   `json:"calories"`
	Protein      float64   `json:"protein"`
	Carbs        float64   `json:"carbs"`
	Fat          float64   `json:"fat"`
	Fiber        float64   `json:"fiber"`
	GoalCalories float64   `json:"goal_calories"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (DailyLog) TableName() string {
	return "daily_logs"
}

// WaterLog records one water intake event in milliliters.
type WaterLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_water_logs_user_date" json:"user_id"`
	Date      string    `gorm:"size:10;not null;index:idx_water_logs_user_date" json:"date"`
	AmountML  int       `gorm:"not null" json:"amount_ml"`
	CreatedAt time.Time `json:"created_at"`
}

func (WaterLog) TableName() string {
	return "water_logs"
}
