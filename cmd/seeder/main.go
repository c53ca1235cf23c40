package main

import (
	"log"

	"devicehub-backend/config"
	"devicehub-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	config.ConnectDB()

	if err := database.SeedAll(config.DB); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
