package teacherValidator

import (
	"strings"

	"voxquiz/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ClassName string `json:"class_name"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.ClassName) == "" {
			errors["class_name"] = "Class name is required!"
		} else if len(strings.TrimSpace(reqData.ClassName)) < 3 {
			errors["class_name"] = "Class name must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

func AddStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			StudentEmail string `json:"student_email"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		email := strings.TrimSpace(reqData.StudentEmail)
		if email == "" {
			errors["student_email"] = "Student email is required!"
		} else if !strings.Contains(email, "@") {
			errors["student_email"] = "Student email is invalid!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
