package teacherRoutes

import (
	teacherControllers "voxquiz/controllers/teacher"
	"voxquiz/middleware"
	"voxquiz/models"
	teacherValidators "voxquiz/validators/teacher"

	"github.com/gofiber/fiber/v2"
)

// SetupTeacherRoutes sets up class management and analytics routes
func SetupTeacherRoutes(app *fiber.App) {
	teacherGroup := app.Group("/teacher")

	teacherGroup.Post("/class", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), teacherValidators.CreateClass(), teacherControllers.CreateClass)
	teacherGroup.Get("/classes", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), teacherControllers.GetClasses)
	teacherGroup.Post("/class/:class_id/add-student", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), teacherValidators.AddStudent(), teacherControllers.AddStudentToClass)
	teacherGroup.Get("/analytics/:class_id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), teacherControllers.GetClassAnalytics)
	teacherGroup.Get("/student/:student_id/progress", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher), teacherControllers.GetStudentProgress)
}
