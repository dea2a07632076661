package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flashdeck-app/flashdeck-api/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// learningPathResponse is the wire shape of a path: the deck list is a
// plain array of deck IDs, resolved separately where the route asks
// for it.
type learningPathResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Decks []string `json:"decks"`
}

// deckSummary is the projection returned when a path's decks are
// resolved: name, flashcards and creator only.
type deckSummary struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Flashcards []models.Flashcard `json:"flashcards"`
	Creator    *string            `json:"creator"`
}

func pathToResponse(path models.LearningPath) learningPathResponse {
	deckIDs := make([]string, len(path.Entries))
	for i, e := range path.Entries {
		deckIDs[i] = e.DeckPublicID
	}
	return learningPathResponse{ID: path.PublicID, Name: path.Name, Decks: deckIDs}
}

// resolveDecks looks up the referenced decks in order. Dangling
// references are skipped; the source never verified them either.
func (db *DBHandler) resolveDecks(path models.LearningPath) ([]deckSummary, error) {
	ids := make([]string, len(path.Entries))
	for i, e := range path.Entries {
		ids[i] = e.DeckPublicID
	}

	var decks []models.Deck
	if err := db.Where("public_id IN ?", ids).
		Preload("Flashcards").
		Preload("Creator").
		Find(&decks).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]models.Deck, len(decks))
	for _, d := range decks {
		byID[d.PublicID] = d
	}

	summaries := make([]deckSummary, 0, len(ids))
	for _, id := range ids {
		d, ok := byID[id]
		if !ok {
			continue
		}
		var creator *string
		if d.Creator != nil {
			creator = &d.Creator.PublicID
		}
		cards := d.Flashcards
		if cards == nil {
			cards = []models.Flashcard{}
		}
		summaries = append(summaries, deckSummary{
			ID:         d.PublicID,
			Name:       d.Name,
			Flashcards: cards,
			Creator:    creator,
		})
	}
	return summaries, nil
}

// POST /learning-path
func (db *DBHandler) CreateLearningPath(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string   `json:"name"`
		Decks []string `json:"decks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Learning path name is required")
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate ID")
		return
	}

	// Deck references are stored as given, existing or not.
	path := models.LearningPath{PublicID: publicID, Name: req.Name}
	for i, deckID := range req.Decks {
		path.Entries = append(path.Entries, models.LearningPathDeck{
			DeckPublicID: deckID,
			Position:     i,
		})
	}

	if err := db.Create(&path).Error; err != nil {
		writeStoreError(w, "Error creating learning path", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Learning path created successfully",
		"path":    pathToResponse(path),
	})
}

// GET /learning-paths
func (db *DBHandler) ListLearningPaths(w http.ResponseWriter, r *http.Request) {
	var paths []models.LearningPath
	err := db.Preload("Entries", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position")
	}).Find(&paths).Error
	if err != nil {
		writeStoreError(w, "Error fetching learning paths", err)
		return
	}

	responses := make([]learningPathResponse, len(paths))
	for i, p := range paths {
		responses[i] = pathToResponse(p)
	}

	writeJSON(w, http.StatusOK, responses)
}

func (db *DBHandler) findLearningPath(id string) (models.LearningPath, error) {
	var path models.LearningPath
	err := db.Preload("Entries", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position")
	}).Where("public_id = ?", id).First(&path).Error
	return path, err
}

// GET /learning-path/{id}
func (db *DBHandler) GetLearningPathByID(w http.ResponseWriter, r *http.Request) {
	path, err := db.findLearningPath(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Learning path not found")
			return
		}
		writeStoreError(w, "Error fetching learning path", err)
		return
	}

	decks, err := db.resolveDecks(path)
	if err != nil {
		writeStoreError(w, "Error fetching learning path", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":    path.PublicID,
		"name":  path.Name,
		"decks": decks,
	})
}

// GET /learning-path/{id}/decks
func (db *DBHandler) GetDecksForLearningPath(w http.ResponseWriter, r *http.Request) {
	path, err := db.findLearningPath(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Learning path not found")
			return
		}
		writeStoreError(w, "Error fetching decks for learning path", err)
		return
	}

	decks, err := db.resolveDecks(path)
	if err != nil {
		writeStoreError(w, "Error fetching decks for learning path", err)
		return
	}

	writeJSON(w, http.StatusOK, decks)
}
