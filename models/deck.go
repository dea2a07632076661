package models

import "gorm.io/gorm"

// Deck represents a named collection of flashcards. A deck with a nil
// creator is a prebuilt/shared deck readable by everyone.
type Deck struct {
	gorm.Model
	PublicID   string `gorm:"uniqueIndex;size:100" json:"id"`
	Name       string `gorm:"not null;size:200" json:"name"`
	Difficulty string `gorm:"size:16" json:"difficulty,omitempty"`

	CreatorID *uint `gorm:"index" json:"-"`
	Creator   *User `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`

	Flashcards []Flashcard `gorm:"foreignKey:DeckID" json:"flashcards"`
}

// ValidDifficulty reports whether s is one of the three accepted
// difficulty levels. The empty string is allowed (difficulty unset).
func ValidDifficulty(s string) bool {
	switch s {
	case "", "easy", "medium", "hard":
		return true
	}
	return false
}
