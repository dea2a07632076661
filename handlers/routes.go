package handlers

import "net/http"

// NewRouter builds the route table. Kept out of main so tests can run
// requests through the exact production mux.
func NewRouter(db *DBHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", db.Health)

	// User
	mux.HandleFunc("POST /register", db.RegisterUser)
	mux.HandleFunc("POST /login", db.LoginUser)
	mux.HandleFunc("GET /user/{id}", db.GetUserProfile)
	mux.HandleFunc("POST /user/{id}/friends", db.AddFriend)
	mux.HandleFunc("POST /user/{id}/badges", db.AwardBadge)
	mux.HandleFunc("POST /user/{id}/learning-paths", db.AttachLearningPath)

	// Deck
	mux.HandleFunc("POST /deck/{userId}", db.CreateDeck)
	mux.HandleFunc("GET /decks/{userId}", db.GetDecksForUser)
	mux.HandleFunc("GET /deck/{id}", db.GetDeckByID)
	mux.HandleFunc("PUT /deck/{id}", db.UpdateDeck)
	mux.HandleFunc("DELETE /deck/{id}", db.DeleteDeck)

	// Badge
	mux.HandleFunc("POST /badge", db.CreateBadge)
	mux.HandleFunc("GET /badges", db.ListBadges)

	// Learning path
	mux.HandleFunc("POST /learning-path", db.CreateLearningPath)
	mux.HandleFunc("GET /learning-paths", db.ListLearningPaths)
	mux.HandleFunc("GET /learning-path/{id}", db.GetLearningPathByID)
	mux.HandleFunc("GET /learning-path/{id}/decks", db.GetDecksForLearningPath)

	// Leaderboard
	mux.HandleFunc("POST /leaderboard", db.UpsertLeaderboardScore)
	mux.HandleFunc("GET /leaderboard", db.GetLeaderboard)

	return mux
}
