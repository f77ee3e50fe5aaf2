package contentRoutes

import (
	contentControllers "voxquiz/controllers/content"
	"voxquiz/middleware"
	"voxquiz/models"
	contentValidators "voxquiz/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up the content store routes
func SetupContentRoutes(app *fiber.App) {
	contentGroup := app.Group("/content")

	contentGroup.Post("/upload", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), contentValidators.UploadContent(), contentControllers.UploadContent)
	contentGroup.Get("/list", middleware.JWTMiddleware, contentControllers.ListContent)
	contentGroup.Get("/:content_id", middleware.JWTMiddleware, contentControllers.GetContent)
}
