package authRoutes

import (
	authControllers "voxquiz/controllers/auth"
	"voxquiz/middleware"
	authValidators "voxquiz/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the profile routes. Token issuance itself happens
// in the external auth layer.
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Get("/me", middleware.JWTMiddleware, authControllers.GetMe)
	authGroup.Patch("/profile", middleware.JWTMiddleware, authValidators.UpdateProfile(), authControllers.UpdateProfile)
}
