package studentRoutes

import (
	studentControllers "voxquiz/controllers/student"
	"voxquiz/middleware"
	"voxquiz/models"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes sets up the student dashboard and review bank routes
func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/student")

	studentGroup.Get("/dashboard", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), studentControllers.GetDashboard)
	studentGroup.Get("/review-bank", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), studentControllers.GetReviewBank)
}
