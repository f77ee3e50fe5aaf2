package contentValidator

import (
	"fmt"

	contentControllers "voxquiz/controllers/content"
	"voxquiz/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// UploadContent validates the bulk upload payload field-by-field before the
// controller touches the database.
func UploadContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []contentControllers.ContentItemInput

		if err := c.BodyParser(&items); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(items) == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"items": "At least one content item is required!",
			})
		}

		errors := make(map[string]string)
		for i, item := range items {
			if err := validate.Struct(item); err != nil {
				for _, fieldErr := range err.(validator.ValidationErrors) {
					key := fmt.Sprintf("items[%d].%s", i, fieldErr.Field())
					switch fieldErr.Tag() {
					case "required":
						errors[key] = "This field is required!"
					case "oneof":
						errors[key] = fmt.Sprintf("Must be one of: %s!", fieldErr.Param())
					default:
						errors[key] = "Invalid value!"
					}
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", items)
		return c.Next()
	}
}
