package routes

import (
	"github.com/Rafaelaligui187/Memoria-sub003/internal/controllers"

	"github.com/gofiber/fiber/v2"
)

// SetupAuth registers the public auth endpoints, before the JWT
// middleware so login itself needs no token.
func SetupAuth(app *fiber.App) {
	app.Post("/register", controllers.Register)
	app.Post("/login", controllers.Login)
}
