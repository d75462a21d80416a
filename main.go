// @title Memoria Yearbook API
// @version 1.0
// @description Digital yearbook backend: profile lifecycle, review queue, gallery, CSV import.
// @host localhost:3000
// @BasePath /

package main

import (
	"log"

	_ "github.com/Rafaelaligui187/Memoria-sub003/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/Rafaelaligui187/Memoria-sub003/bootstrap"
	"github.com/Rafaelaligui187/Memoria-sub003/config"
	"github.com/Rafaelaligui187/Memoria-sub003/database"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/middleware"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/routes"

	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {

	// Load configuration (reads .env when present)
	cfg := config.LoadConfig()

	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	// Connect to the database
	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(nil)

	db := client.Database(cfg.MongoDB)

	// Unique like index, profile lookup indexes, unique user email
	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// Fiber app
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // or specify your frontend URL
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// Get JWT with login
	routes.SetupAuth(app)

	app.Use(middleware.JWTUidOnly(cfg.JWTSecret))

	// Routes
	routes.Register(app, db, cfg)

	// RUN SERVER
	log.Fatal(app.Listen(":" + cfg.Port))
}
