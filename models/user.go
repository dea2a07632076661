package models

import "gorm.io/gorm"

// User represents a registered learner.
type User struct {
	gorm.Model
	PublicID     string `gorm:"uniqueIndex;size:100" json:"id"`
	Username     string `gorm:"not null;size:100" json:"username"`
	Email        string `gorm:"unique;not null;size:200" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	XP           int    `gorm:"default:0" json:"xp"`

	Badges        []Badge        `gorm:"many2many:user_badges" json:"badges,omitempty"`
	Friends       []*User        `gorm:"many2many:user_friends" json:"friends,omitempty"`
	LearningPaths []LearningPath `gorm:"many2many:user_learning_paths" json:"learningPaths,omitempty"`
	Decks         []Deck         `gorm:"foreignKey:CreatorID" json:"customDecks,omitempty"`
}
