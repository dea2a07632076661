package main

import (
	"log"
	"net/http"
	"os"

	"github.com/flashdeck-app/flashdeck-api/config"
	"github.com/flashdeck-app/flashdeck-api/handlers"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
	}
}

func main() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL is not set. Refusing to start.")
	}

	db, err := config.Connect(dsn)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	DBHandler := &handlers.DBHandler{DB: db}
	mux := handlers.NewRouter(DBHandler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		MaxAge:         86400,
	}).Handler(mux)

	port := config.EnvOr("PORT", "8080")
	serverAddr := "0.0.0.0:" + port

	log.Printf("Server is running on port %s", port)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
