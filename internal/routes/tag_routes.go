package routes

import (
	"devicehub-backend/internal/handler"
	"devicehub-backend/internal/middleware"
	"devicehub-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTagRoutes(app *fiber.App, db *gorm.DB) {
	tagRepo := repository.NewTagRepository(db)
	tagHandler := handler.NewTagHandler(tagRepo)

	tags := app.Group("/api/tags", middleware.Auth(db))
	tags.Get("/", tagHandler.GetAll)
	tags.Put("/:id", tagHandler.Update)
	tags.Patch("/:id", tagHandler.Update)
	tags.Delete("/:id", tagHandler.Delete)
}
