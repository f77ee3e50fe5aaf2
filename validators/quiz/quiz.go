package quizValidator

import (
	"strings"

	"voxquiz/middleware"
	"voxquiz/models"

	"github.com/gofiber/fiber/v2"
)

func StartQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Grade         string `json:"grade"`
			Difficulty    string `json:"difficulty"`
			QuestionCount int    `json:"question_count"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Grade
		if strings.TrimSpace(reqData.Grade) == "" {
			errors["grade"] = "Grade is required!"
		} else if !models.ValidGrade(reqData.Grade) {
			errors["grade"] = "Grade must be one of Year3 to Year8!"
		}

		// Validate Difficulty (optional)
		if reqData.Difficulty != "" && !models.ValidDifficulty(reqData.Difficulty) {
			errors["difficulty"] = "Difficulty must be Low, Medium or High!"
		}

		// Validate QuestionCount (optional, defaulted in the controller)
		if reqData.QuestionCount < 0 {
			errors["question_count"] = "Question count must be positive!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

func SubmitAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SessionID  string `json:"session_id"`
			ContentID  string `json:"content_id"`
			UserAnswer string `json:"user_answer"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.SessionID) == "" {
			errors["session_id"] = "Session id is required!"
		}
		if strings.TrimSpace(reqData.ContentID) == "" {
			errors["content_id"] = "Content id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

func CompleteQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SessionID string `json:"session_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.SessionID) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"session_id": "Session id is required!",
			})
		}

		return c.Next()
	}
}
