package quizRoutes

import (
	quizControllers "voxquiz/controllers/quiz"
	"voxquiz/middleware"
	"voxquiz/models"
	quizValidators "voxquiz/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up all quiz session routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz")

	quizGroup.Post("/start", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), quizValidators.StartQuiz(), quizControllers.StartQuiz)
	quizGroup.Post("/answer", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), quizValidators.SubmitAnswer(), quizControllers.SubmitAnswer)
	quizGroup.Post("/complete", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), quizValidators.CompleteQuiz(), quizControllers.CompleteQuiz)
}
