package main

import (
	"log"

	"devicehub-backend/config"
	"devicehub-backend/docs"
	"devicehub-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	config.ConnectDB()

	app := fiber.New()

	app.Use(cors.New())
	app.Use(logger.New())

	app.Static("/uploads", config.UploadDir())

	app.Get("/api/schema", docs.Schema)

	routes.SetupHealthRoutes(app)
	routes.SetupUserRoutes(app, config.DB)
	routes.SetupDeviceRoutes(app, config.DB)
	routes.SetupTagRoutes(app, config.DB)
	routes.SetupSensorRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	log.Fatal(app.Listen(":" + port))
}
