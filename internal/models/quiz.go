package models

import (
	"time"

	"github.com/google/uuid"
)

// QuizResponse is one completed craving quiz session. The derived craving
// profile is not stored; it is recomputed from the answers when needed.
type QuizResponse struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Mood      string    `gorm:"size:50" json:"mood"`
	Texture   string    `gorm:"size:50" json:"texture"`
	Taste     string    `gorm:"size:50" json:"taste"`
	Hunger    string    `gorm:"size:50" json:"hunger"`
	Diet      string    `gorm:"size:50" json:"diet"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (QuizResponse) TableName() string {
	return "quiz_responses"
}
