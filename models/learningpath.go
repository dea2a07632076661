package models

import "gorm.io/gorm"

// LearningPath groups decks under a name in a caller-defined order.
type LearningPath struct {
	gorm.Model
	PublicID string `gorm:"uniqueIndex;size:100" json:"id"`
	Name     string `gorm:"not null;size:200" json:"name"`

	Entries []LearningPathDeck `gorm:"foreignKey:LearningPathID" json:"-"`
}

// LearningPathDeck is one ordered deck reference inside a learning
// path. The deck is referenced by public ID and is not verified to
// exist; resolution skips dangling references.
type LearningPathDeck struct {
	gorm.Model
	LearningPathID uint   `gorm:"not null;index"`
	DeckPublicID   string `gorm:"not null;size:100"`
	Position       int    `gorm:"not null"`
}
