package models

import "gorm.io/gorm"

// Flashcard is a question/answer pair. DeckID stays nil until the card
// is linked to its owning deck.
type Flashcard struct {
	gorm.Model
	PublicID   string `gorm:"uniqueIndex;size:100" json:"id"`
	Question   string `gorm:"not null;size:1000" json:"question"`
	Answer     string `gorm:"not null;size:1000" json:"answer"`
	Difficulty string `gorm:"size:16" json:"difficulty,omitempty"`

	DeckID *uint `gorm:"index" json:"-"`
}
