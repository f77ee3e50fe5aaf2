package authValidator

import (
	"strings"

	"voxquiz/middleware"
	"voxquiz/models"

	"github.com/gofiber/fiber/v2"
)

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Role        string `json:"role"`
			Grade       string `json:"grade"`
			ParentEmail string `json:"parent_email"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Role {
		case models.RoleStudent, models.RoleTeacher, models.RoleParent:
		default:
			errors["role"] = "Role must be STUDENT, TEACHER or PARENT!"
		}

		if reqData.Grade != "" && !models.ValidGrade(reqData.Grade) {
			errors["grade"] = "Grade must be one of Year3 to Year8!"
		}

		if email := strings.TrimSpace(reqData.ParentEmail); email != "" && !strings.Contains(email, "@") {
			errors["parent_email"] = "Parent email is invalid!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
