package routes

import (
	"devicehub-backend/internal/handler"
	"devicehub-backend/internal/middleware"
	"devicehub-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSensorRoutes(app *fiber.App, db *gorm.DB) {
	sensorRepo := repository.NewSensorRepository(db)
	sensorHandler := handler.NewSensorHandler(sensorRepo)

	sensors := app.Group("/api/sensors", middleware.Auth(db))
	sensors.Get("/", sensorHandler.GetAll)
	sensors.Put("/:id", sensorHandler.Update)
	sensors.Patch("/:id", sensorHandler.Update)
	sensors.Delete("/:id", sensorHandler.Delete)
}
