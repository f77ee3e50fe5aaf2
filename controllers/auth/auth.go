package controllers

import (
	"voxquiz/database"
	"voxquiz/middleware"
	"voxquiz/models"

	"github.com/gofiber/fiber/v2"
)

// GetMe returns the authenticated user's profile
func GetMe(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// UpdateProfile sets the user's role after first login, plus grade and parent
// email for students. Initializes the reward ledger for new students.
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		Role        string `json:"role"`
		Grade       string `json:"grade"`
		ParentEmail string `json:"parent_email"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	user.Role = reqData.Role
	if reqData.Role == models.RoleStudent {
		if reqData.Grade != "" {
			user.Grade = reqData.Grade
		}
		if reqData.ParentEmail != "" {
			user.ParentEmail = reqData.ParentEmail
		}
	}

	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	// Students get a reward ledger on first role assignment
	if user.Role == models.RoleStudent {
		var state models.RewardState
		if err := db.Where("user_id = ?", user.ID).First(&state).Error; err != nil {
			state = models.RewardState{UserID: user.ID, Level: 1}
			db.Create(&state)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated!", user)
}
