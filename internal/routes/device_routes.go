package routes

import (
	"devicehub-backend/internal/handler"
	"devicehub-backend/internal/middleware"
	"devicehub-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDeviceRoutes(app *fiber.App, db *gorm.DB) {
	deviceRepo := repository.NewDeviceRepository(db)
	deviceHandler := handler.NewDeviceHandler(deviceRepo)

	devices := app.Group("/api/devices", middleware.Auth(db))
	devices.Get("/", deviceHandler.GetAll)
	devices.Post("/", deviceHandler.Create)
	devices.Get("/:id", deviceHandler.GetByID)
	devices.Put("/:id", deviceHandler.Update)
	devices.Patch("/:id", deviceHandler.Update)
	devices.Delete("/:id", deviceHandler.Delete)
	devices.Post("/:id/upload-image", deviceHandler.UploadImage)
}
