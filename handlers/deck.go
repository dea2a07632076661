package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/flashdeck-app/flashdeck-api/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// POST /deck/{userId}
//
// Creates the flashcards detached, the deck, and the back-references in
// one transaction so a mid-sequence failure leaves no orphaned cards.
func (db *DBHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string `json:"name"`
		Difficulty string `json:"difficulty"`
		Flashcards []struct {
			Question   string `json:"question"`
			Answer     string `json:"answer"`
			Difficulty string `json:"difficulty"`
		} `json:"flashcards"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || len(req.Flashcards) == 0 {
		writeError(w, http.StatusBadRequest, "Deck name and flashcards are required")
		return
	}
	if !models.ValidDifficulty(req.Difficulty) {
		writeError(w, http.StatusBadRequest, "Difficulty must be easy, medium or hard")
		return
	}

	var user models.User
	if err := db.Where("public_id = ?", r.PathValue("userId")).First(&user).Error; err != nil {
		writeLookupError(w, err, "User not found", "Error creating deck")
		return
	}

	cards := make([]models.Flashcard, 0, len(req.Flashcards))
	for _, c := range req.Flashcards {
		if c.Question == "" || c.Answer == "" {
			writeError(w, http.StatusBadRequest, "Each flashcard must have a question and answer")
			return
		}
		if !models.ValidDifficulty(c.Difficulty) {
			writeError(w, http.StatusBadRequest, "Difficulty must be easy, medium or hard")
			return
		}
		publicID, err := gonanoid.New()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to generate ID")
			return
		}
		cards = append(cards, models.Flashcard{
			PublicID:   publicID,
			Question:   c.Question,
			Answer:     c.Answer,
			Difficulty: c.Difficulty,
		})
	}

	deckID, err := gonanoid.New()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate ID")
		return
	}

	deck := models.Deck{
		PublicID:   deckID,
		Name:       req.Name,
		Difficulty: req.Difficulty,
		CreatorID:  &user.ID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// Cards start detached, then get their back-reference once
		// the deck row exists.
		if err := tx.Create(&cards).Error; err != nil {
			return err
		}
		if err := tx.Create(&deck).Error; err != nil {
			return err
		}
		ids := make([]uint, len(cards))
		for i, c := range cards {
			ids[i] = c.ID
		}
		return tx.Model(&models.Flashcard{}).
			Where("id IN ?", ids).
			Update("deck_id", deck.ID).Error
	})
	if err != nil {
		writeStoreError(w, "Error creating deck", err)
		return
	}

	if err := db.Preload("Flashcards").First(&deck, deck.ID).Error; err != nil {
		writeStoreError(w, "Error retrieving created deck", err)
		return
	}

	log.Printf("CreateDeck: created deck %s with %d cards for user %s", deck.PublicID, len(cards), user.PublicID)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Deck created successfully",
		"deck":       deck,
		"flashcards": deck.Flashcards,
	})
}

// GET /decks/{userId}
func (db *DBHandler) GetDecksForUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	err := db.Where("public_id = ?", r.PathValue("userId")).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// An unknown user owns no decks; not an error.
		writeJSON(w, http.StatusOK, []models.Deck{})
		return
	}
	if err != nil {
		writeStoreError(w, "Error fetching decks", err)
		return
	}

	var decks []models.Deck
	if err := db.Where("creator_id = ?", user.ID).Preload("Flashcards").Find(&decks).Error; err != nil {
		writeStoreError(w, "Error fetching decks", err)
		return
	}

	// Return an empty array instead of null.
	if len(decks) == 0 {
		decks = []models.Deck{}
	}

	writeJSON(w, http.StatusOK, decks)
}

// GET /deck/{id}
func (db *DBHandler) GetDeckByID(w http.ResponseWriter, r *http.Request) {
	var deck models.Deck
	err := db.Preload("Flashcards").Preload("Creator").
		Where("public_id = ?", r.PathValue("id")).First(&deck).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Deck not found")
			return
		}
		writeStoreError(w, "Error fetching deck", err)
		return
	}

	if deck.Flashcards == nil {
		deck.Flashcards = []models.Flashcard{}
	}

	writeJSON(w, http.StatusOK, deck)
}

// PUT /deck/{id}
//
// Partial update. When a flashcards list is supplied it replaces the
// deck's membership: cards named by public ID are linked, the rest of
// the deck's current cards are detached.
func (db *DBHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       *string   `json:"name"`
		Difficulty *string   `json:"difficulty"`
		Flashcards *[]string `json:"flashcards"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var deck models.Deck
	if err := db.Where("public_id = ?", r.PathValue("id")).First(&deck).Error; err != nil {
		writeLookupError(w, err, "Deck not found", "Error updating deck")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			writeError(w, http.StatusBadRequest, "Deck name cannot be empty")
			return
		}
		updates["name"] = *req.Name
	}
	if req.Difficulty != nil {
		if !models.ValidDifficulty(*req.Difficulty) {
			writeError(w, http.StatusBadRequest, "Difficulty must be easy, medium or hard")
			return
		}
		updates["difficulty"] = *req.Difficulty
	}

	var cards []models.Flashcard
	if req.Flashcards != nil {
		if err := db.Where("public_id IN ?", *req.Flashcards).Find(&cards).Error; err != nil {
			writeStoreError(w, "Error updating deck", err)
			return
		}
		if len(cards) != len(*req.Flashcards) {
			writeError(w, http.StatusBadRequest, "Unknown flashcard in list")
			return
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&deck).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Flashcards == nil {
			return nil
		}
		if err := tx.Model(&models.Flashcard{}).
			Where("deck_id = ?", deck.ID).
			Update("deck_id", nil).Error; err != nil {
			return err
		}
		if len(cards) == 0 {
			return nil
		}
		ids := make([]uint, len(cards))
		for i, c := range cards {
			ids[i] = c.ID
		}
		return tx.Model(&models.Flashcard{}).
			Where("id IN ?", ids).
			Update("deck_id", deck.ID).Error
	})
	if err != nil {
		writeStoreError(w, "Error updating deck", err)
		return
	}

	if err := db.Preload("Flashcards").First(&deck, deck.ID).Error; err != nil {
		writeStoreError(w, "Error retrieving updated deck", err)
		return
	}
	if deck.Flashcards == nil {
		deck.Flashcards = []models.Flashcard{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Deck updated successfully",
		"deck":    deck,
	})
}

// DELETE /deck/{id}
//
// Deleting a deck detaches its flashcards in the same transaction, so
// the cards survive with a nil back-reference. Removal from the
// creator's deck list falls out of the foreign key.
func (db *DBHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	var deck models.Deck
	if err := db.Where("public_id = ?", r.PathValue("id")).First(&deck).Error; err != nil {
		writeLookupError(w, err, "Deck not found", "Error deleting deck")
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Flashcard{}).
			Where("deck_id = ?", deck.ID).
			Update("deck_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&deck).Error
	})
	if err != nil {
		writeStoreError(w, "Error deleting deck", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Deck deleted successfully"})
}
