package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flashdeck-app/flashdeck-api/models"
	"gorm.io/gorm"
)

// POST /leaderboard
//
// Upsert keyed by user: the previous score is replaced outright. No
// check that the score only increases, no ranking here.
func (db *DBHandler) UpsertLeaderboardScore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
		Score  *int   `json:"score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == "" || req.Score == nil {
		writeError(w, http.StatusBadRequest, "userId and score are required")
		return
	}

	var user models.User
	if err := db.Where("public_id = ?", req.UserID).First(&user).Error; err != nil {
		writeLookupError(w, err, "User not found", "Error updating leaderboard")
		return
	}

	var entry models.LeaderboardEntry
	err := db.Where("user_id = ?", user.ID).First(&entry).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = models.LeaderboardEntry{UserID: user.ID, Score: *req.Score}
		if err := db.Create(&entry).Error; err != nil {
			writeStoreError(w, "Error updating leaderboard", err)
			return
		}
	case err != nil:
		writeStoreError(w, "Error updating leaderboard", err)
		return
	default:
		entry.Score = *req.Score
		if err := db.Save(&entry).Error; err != nil {
			writeStoreError(w, "Error updating leaderboard", err)
			return
		}
	}

	entry.User = user
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Leaderboard updated successfully",
		"leaderboard": entry,
	})
}

// GET /leaderboard
//
// Entries ordered by score descending. Ties stay in store order.
func (db *DBHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	var entries []models.LeaderboardEntry
	if err := db.Preload("User").Order("score DESC").Find(&entries).Error; err != nil {
		writeStoreError(w, "Error fetching leaderboard", err)
		return
	}

	if len(entries) == 0 {
		entries = []models.LeaderboardEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}
