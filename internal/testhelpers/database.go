package testhelpers

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cravefit/backend/internal/models"
)

// SetupTestDatabase returns an in-memory SQLite database with the full
// schema migrated. Each call gets a fresh database.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Meal{},
		&models.DailyLog{},
		&models.WaterLog{},
		&models.QuizResponse{},
		&models.DishImage{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
