package routes

import (
	"github.com/Rafaelaligui187/Memoria-sub003/config"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/controllers"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Register wires every authenticated route group. SetupAuth must have
// run first so /login and /register stay public.
func Register(app *fiber.App, db *mongo.Database, cfg config.Config) {
	ProfileRoutes(app)
	SchoolYearRoutes(app)
	GalleryRoutes(app, cfg)
	NotificationRoutes(app)
	AdminRoutes(app, db)

	app.Get("/api/events", controllers.ListRecentEventsHandler())
}

func ProfileRoutes(app *fiber.App) {
	profiles := app.Group("/api/profiles")
	profiles.Post("/", controllers.SubmitProfileHandler())
	profiles.Get("/", controllers.GetOwnProfileHandler())
	profiles.Delete("/", controllers.DeleteProfileHandler())
}

func SchoolYearRoutes(app *fiber.App) {
	years := app.Group("/api/school-years")
	years.Get("/", controllers.ListSchoolYearsHandler())
	years.Post("/", controllers.CreateSchoolYearHandler())
	years.Put("/:id", controllers.UpdateSchoolYearHandler())
	years.Post("/:id/activate", controllers.ActivateSchoolYearHandler())
	years.Delete("/:id", controllers.DeleteSchoolYearHandler())
}

func GalleryRoutes(app *fiber.App, cfg config.Config) {
	gallery := app.Group("/api/gallery")
	gallery.Post("/albums", controllers.CreateAlbumHandler())
	gallery.Get("/albums", controllers.ListAlbumsHandler())
	gallery.Get("/albums/:albumId", controllers.GetAlbumHandler())
	gallery.Put("/albums/:albumId", controllers.UpdateAlbumHandler())
	gallery.Delete("/albums/:albumId", controllers.DeleteAlbumHandler())
	gallery.Post("/albums/:albumId/media", controllers.UploadMediaHandler(cfg.UploadDir, cfg.PublicBaseURL))
	gallery.Get("/albums/:albumId/media", controllers.ListMediaHandler())
	gallery.Post("/albums/:albumId/like", controllers.LikeAlbumHandler())
	gallery.Delete("/albums/:albumId/like", controllers.UnlikeAlbumHandler())
	gallery.Post("/albums/:albumId/view", controllers.RecordAlbumViewHandler())
}

func NotificationRoutes(app *fiber.App) {
	noti := app.Group("/api/notifications")
	noti.Get("/", controllers.GetUnreadNotifications())
	noti.Get("/:id", controllers.GetNotificationAndMarkRead())
}

// AdminRoutes carries the review/import surface; everything under
// /api/admin is gated on the admin role.
func AdminRoutes(app *fiber.App, db *mongo.Database) {
	admin := app.Group("/api/admin", middleware.RequireAdmin(db))

	admin.Get("/:yearId/profiles", controllers.ListReviewQueueHandler())
	admin.Post("/:yearId/profiles/manual", controllers.CreateManualProfileHandler())
	admin.Post("/:yearId/profiles/advisory", controllers.CreateAdvisoryProfileHandler())
	admin.Put("/:yearId/profiles/advisory", controllers.UpdateAdvisoryProfileHandler())
	admin.Delete("/:yearId/profiles/advisory", controllers.DeleteAdvisoryProfileHandler())
	admin.Post("/:yearId/profiles/:profileId/approve", controllers.ApproveProfileHandler())
	admin.Post("/:yearId/profiles/:profileId/reject", controllers.RejectProfileHandler())
	admin.Post("/:yearId/import", controllers.ImportProfilesHandler())
	admin.Get("/:yearId/audit-logs", controllers.ListAuditLogsHandler())
}
