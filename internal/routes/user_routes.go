package routes

import (
	"devicehub-backend/internal/handler"
	"devicehub-backend/internal/middleware"
	"devicehub-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	userHandler := handler.NewUserHandler(userRepo)

	user := app.Group("/api/user")
	user.Post("/register", userHandler.Register)
	user.Post("/login", userHandler.Login)

	me := user.Group("/me", middleware.Auth(db))
	me.Get("/", userHandler.Me)
	me.Put("/", userHandler.UpdateMe)
	me.Patch("/", userHandler.UpdateMe)
}
