package controllers

import (
	"voxquiz/database"
	"voxquiz/middleware"
	"voxquiz/models"
	"voxquiz/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// ContentItemInput is one item of a bulk upload. CSV parsing happens
// upstream; by the time it reaches this core the payload is structured.
type ContentItemInput struct {
	ContentID        string   `json:"content_id"`
	Grade            string   `json:"grade" validate:"required,oneof=Year3 Year4 Year5 Year6 Year7 Year8"`
	Term             string   `json:"term"`
	Topic            string   `json:"topic"`
	Subtopic         string   `json:"subtopic"`
	Difficulty       string   `json:"difficulty" validate:"required,oneof=Low Medium High"`
	QuestionText     string   `json:"question_text" validate:"required"`
	AnswerText       string   `json:"answer_text" validate:"required"`
	Explanation      string   `json:"explanation"`
	Source           string   `json:"source"`
	Tags             []string `json:"tags"`
	AlternateAnswers []string `json:"alternate_answers"`
}

// UploadContent bulk-upserts quiz items keyed by content_id
func UploadContent(c *fiber.Ctx) error {
	items, ok := c.Locals("validatedContent").([]ContentItemInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	count := 0
	for _, input := range items {
		contentID := input.ContentID
		if contentID == "" {
			contentID = utils.NewPublicID("content")
		}

		item := models.Content{
			ContentID:        contentID,
			Grade:            input.Grade,
			Term:             input.Term,
			Topic:            input.Topic,
			Subtopic:         input.Subtopic,
			Difficulty:       input.Difficulty,
			QuestionText:     input.QuestionText,
			AnswerText:       input.AnswerText,
			Explanation:      input.Explanation,
			Source:           input.Source,
			Tags:             datatypes.NewJSONSlice(input.Tags),
			AlternateAnswers: datatypes.NewJSONSlice(input.AlternateAnswers),
		}

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "content_id"}},
			UpdateAll: true,
		}).Create(&item).Error
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload content!", nil)
		}
		count++
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content uploaded!", fiber.Map{
		"uploaded": count,
	})
}

// ListContent lists quiz items with optional filters
func ListContent(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.Content{})
	if grade := c.Query("grade"); grade != "" {
		query = query.Where("grade = ?", grade)
	}
	if term := c.Query("term"); term != "" {
		query = query.Where("term = ?", term)
	}
	if topic := c.Query("topic"); topic != "" {
		query = query.Where("topic = ?", topic)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var items []models.Content
	if err := query.Order("id asc").Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", items)
}

// GetContent fetches a single quiz item
func GetContent(c *fiber.Ctx) error {
	contentID := c.Params("content_id")

	var item models.Content
	if err := database.Database.Db.Where("content_id = ?", contentID).First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", item)
}
