package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/flashdeck-app/flashdeck-api/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// POST /register
func (db *DBHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("RegisterUser: hashing password failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Error registering user")
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate ID")
		return
	}

	user := models.User{
		PublicID:     publicID,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	// The unique index on email rejects duplicates here.
	if err := db.Create(&user).Error; err != nil {
		writeStoreError(w, "Error registering user", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    user,
	})
}

// POST /login
func (db *DBHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeStoreError(w, "Error logging in user", err)
		return
	}

	// bcrypt's comparison is constant-time.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    user,
	})
}

// GET /user/{id}
func (db *DBHandler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	var user models.User
	err := db.
		Preload("Badges").
		Preload("Friends").
		Preload("LearningPaths").
		Preload("Decks.Flashcards").
		Where("public_id = ?", r.PathValue("id")).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		writeStoreError(w, "Error fetching user profile", err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// POST /user/{id}/friends
//
// Adds a one-way friend reference; the source model never enforced
// symmetry and neither do we.
func (db *DBHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FriendID string `json:"friendId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FriendID == "" {
		writeError(w, http.StatusBadRequest, "friendId is required")
		return
	}

	var user models.User
	if err := db.Where("public_id = ?", r.PathValue("id")).First(&user).Error; err != nil {
		writeLookupError(w, err, "User not found", "Error adding friend")
		return
	}

	var friend models.User
	if err := db.Where("public_id = ?", req.FriendID).First(&friend).Error; err != nil {
		writeLookupError(w, err, "Friend not found", "Error adding friend")
		return
	}

	if err := db.Model(&user).Association("Friends").Append(&friend); err != nil {
		writeStoreError(w, "Error adding friend", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Friend added successfully"})
}

// POST /user/{id}/badges
func (db *DBHandler) AwardBadge(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BadgeID string `json:"badgeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BadgeID == "" {
		writeError(w, http.StatusBadRequest, "badgeId is required")
		return
	}

	var user models.User
	if err := db.Where("public_id = ?", r.PathValue("id")).First(&user).Error; err != nil {
		writeLookupError(w, err, "User not found", "Error awarding badge")
		return
	}

	var badge models.Badge
	if err := db.Where("public_id = ?", req.BadgeID).First(&badge).Error; err != nil {
		writeLookupError(w, err, "Badge not found", "Error awarding badge")
		return
	}

	if err := db.Model(&user).Association("Badges").Append(&badge); err != nil {
		writeStoreError(w, "Error awarding badge", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Badge awarded successfully"})
}

// POST /user/{id}/learning-paths
func (db *DBHandler) AttachLearningPath(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LearningPathID string `json:"learningPathId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LearningPathID == "" {
		writeError(w, http.StatusBadRequest, "learningPathId is required")
		return
	}

	var user models.User
	if err := db.Where("public_id = ?", r.PathValue("id")).First(&user).Error; err != nil {
		writeLookupError(w, err, "User not found", "Error attaching learning path")
		return
	}

	var path models.LearningPath
	if err := db.Where("public_id = ?", req.LearningPathID).First(&path).Error; err != nil {
		writeLookupError(w, err, "Learning path not found", "Error attaching learning path")
		return
	}

	if err := db.Model(&user).Association("LearningPaths").Append(&path); err != nil {
		writeStoreError(w, "Error attaching learning path", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Learning path added successfully"})
}
