package config

import (
	"github.com/flashdeck-app/flashdeck-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. The
// returned handle is the single long-lived connection for the process;
// it is passed to the handlers rather than held in a package global.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate applies the schema. Exported so tests can migrate their own
// sqlite databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Deck{},
		&models.Flashcard{},
		&models.Badge{},
		&models.LearningPath{},
		&models.LearningPathDeck{},
		&models.LeaderboardEntry{},
	)
}
