package models

import "gorm.io/gorm"

// LeaderboardEntry is the single current score on record for a user.
// The unique index on UserID backs the upsert-by-user semantics;
// last write wins and no history is kept.
type LeaderboardEntry struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex" json:"-"`
	User   User `gorm:"foreignKey:UserID" json:"user"`
	Score  int  `gorm:"not null" json:"score"`
}
