package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/flashdeck-app/flashdeck-api/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// POST /badge
func (db *DBHandler) CreateBadge(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Tag  string `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Tag == "" {
		writeError(w, http.StatusBadRequest, "Badge name and tag are required")
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate ID")
		return
	}

	// No dedup: identical badges may coexist.
	badge := models.Badge{PublicID: publicID, Name: req.Name, Tag: req.Tag}
	if err := db.Create(&badge).Error; err != nil {
		writeStoreError(w, "Error creating badge", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Badge created successfully",
		"badge":   badge,
	})
}

// GET /badges
func (db *DBHandler) ListBadges(w http.ResponseWriter, r *http.Request) {
	var badges []models.Badge
	if err := db.Find(&badges).Error; err != nil {
		writeStoreError(w, "Error fetching badges", err)
		return
	}

	if len(badges) == 0 {
		badges = []models.Badge{}
	}

	writeJSON(w, http.StatusOK, badges)
}
