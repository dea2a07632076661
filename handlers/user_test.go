package handlers

import (
	"net/http"
	"testing"

	"github.com/flashdeck-app/flashdeck-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	mux, _ := newTestEnv(t)

	rec := doRequest(t, mux, http.MethodPost, "/register", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "s3cret-pw",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "User registered successfully", body["message"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, float64(0), user["xp"])
	registeredID := user["id"].(string)
	assert.NotEmpty(t, registeredID)

	// The hash must never leak into a response.
	assert.NotContains(t, rec.Body.String(), "s3cret-pw")
	assert.NotContains(t, rec.Body.String(), "PasswordHash")

	rec = doRequest(t, mux, http.MethodPost, "/login", map[string]string{
		"email":    "alice@example.com",
		"password": "s3cret-pw",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body = decodeBody(t, rec)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, registeredID, body["user"].(map[string]interface{})["id"])
}

func TestRegisterMissingFields(t *testing.T) {
	mux, _ := newTestEnv(t)

	rec := doRequest(t, mux, http.MethodPost, "/register", map[string]string{
		"username": "bob",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	mux, db := newTestEnv(t)

	registerTestUser(t, mux, "carol", "carol@example.com")

	rec := doRequest(t, mux, http.MethodPost, "/register", map[string]string{
		"username": "carol2",
		"email":    "carol@example.com",
		"password": "another-pw",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "duplicate register must not create a second record")
}

func TestLoginWrongPassword(t *testing.T) {
	mux, _ := newTestEnv(t)

	registerTestUser(t, mux, "dave", "dave@example.com")

	// Close but wrong.
	rec := doRequest(t, mux, http.MethodPost, "/login", map[string]string{
		"email":    "dave@example.com",
		"password": "hunter23",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["error"])
}

func TestLoginUnknownEmail(t *testing.T) {
	mux, _ := newTestEnv(t)

	rec := doRequest(t, mux, http.MethodPost, "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPasswordStoredHashed(t *testing.T) {
	mux, db := newTestEnv(t)

	registerTestUser(t, mux, "erin", "erin@example.com")

	var user models.User
	require.NoError(t, db.Where("email = ?", "erin@example.com").First(&user).Error)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.Contains(t, user.PasswordHash, "$2a$")
}

func TestGetProfileNotFound(t *testing.T) {
	mux, _ := newTestEnv(t)

	rec := doRequest(t, mux, http.MethodGet, "/user/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProfileResolvesRelations(t *testing.T) {
	mux, _ := newTestEnv(t)

	userID := registerTestUser(t, mux, "frank", "frank@example.com")
	friendID := registerTestUser(t, mux, "grace", "grace@example.com")

	rec := doRequest(t, mux, http.MethodPost, "/badge", map[string]string{
		"name": "Early Bird",
		"tag":  "engagement",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	badgeID := decodeBody(t, rec)["badge"].(map[string]interface{})["id"].(string)

	rec = doRequest(t, mux, http.MethodPost, "/learning-path", map[string]interface{}{
		"name":  "Basics",
		"decks": []string{},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	pathID := decodeBody(t, rec)["path"].(map[string]interface{})["id"].(string)

	rec = doRequest(t, mux, http.MethodPost, "/user/"+userID+"/badges", map[string]string{"badgeId": badgeID})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, mux, http.MethodPost, "/user/"+userID+"/friends", map[string]string{"friendId": friendID})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, mux, http.MethodPost, "/user/"+userID+"/learning-paths", map[string]string{"learningPathId": pathID})
	require.Equal(t, http.StatusOK, rec.Code)

	deckID := createTestDeck(t, mux, userID, "Algebra", []map[string]string{
		{"question": "2+2", "answer": "4"},
	})

	rec = doRequest(t, mux, http.MethodGet, "/user/"+userID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeBody(t, rec)

	badges := profile["badges"].([]interface{})
	require.Len(t, badges, 1)
	assert.Equal(t, "Early Bird", badges[0].(map[string]interface{})["name"])

	friends := profile["friends"].([]interface{})
	require.Len(t, friends, 1)
	assert.Equal(t, "grace", friends[0].(map[string]interface{})["username"])

	paths := profile["learningPaths"].([]interface{})
	require.Len(t, paths, 1)
	assert.Equal(t, "Basics", paths[0].(map[string]interface{})["name"])

	decks := profile["customDecks"].([]interface{})
	require.Len(t, decks, 1)
	deck := decks[0].(map[string]interface{})
	assert.Equal(t, deckID, deck["id"])
	assert.Len(t, deck["flashcards"].([]interface{}), 1)
}

func TestAddFriendUnknownUser(t *testing.T) {
	mux, _ := newTestEnv(t)

	userID := registerTestUser(t, mux, "heidi", "heidi@example.com")

	rec := doRequest(t, mux, http.MethodPost, "/user/"+userID+"/friends", map[string]string{
		"friendId": "no-such-user",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
