package models

import (
	"time"

	"github.com/google/uuid"
)

// DishImage caches a resolved image URL for a dish name. NormalizedName is
// the lookup key: lowercased, trimmed, inner whitespace collapsed. Rows are
// written best effort; a miss just falls through to the photo search.
type DishImage struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	NormalizedName string    `gorm:"size:255;not null;uniqueIndex" json:"normalized_name"`
	DisplayName    string    `gorm:"size:255;not null" json:"display_name"`
	ImageURL       string    `gorm:"size:512;not null" json:"image_url"`
	Source         string    `gorm:"size:20;not null" json:"source"` // "search" or "upload"
	CreatedAt      time.Time `json:"created_at"`
}

func (DishImage) TableName() string {
	return "dish_images"
}
