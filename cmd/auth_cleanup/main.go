package main

import (
	"context"
	"log"
	"os"

	"pluggedin/internal/database"
	"pluggedin/internal/repository"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	resets := repository.NewPasswordResetRepository(db)
	removed, err := resets.DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("cleanup password_resets failed: %v", err)
	}

	log.Printf("auth cleanup completed: password_resets=%d", removed)
}
