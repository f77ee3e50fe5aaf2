package controllers

import (
	"voxquiz/database"
	"voxquiz/middleware"
	"voxquiz/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetDashboard returns the student's streak, rewards, progress counts and
// recent completed quizzes
func GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var state models.RewardState
	if err := db.Where("user_id = ?", userID).First(&state).Error; err != nil {
		state = models.RewardState{UserID: userID, Level: 1}
	}

	var totalItems, mastered int64
	db.Model(&models.MasteryRecord{}).Where("user_id = ?", userID).Count(&totalItems)
	db.Model(&models.MasteryRecord{}).Where("user_id = ? AND mastered = true", userID).Count(&mastered)

	var recentQuizzes []models.QuizSession
	db.Where("user_id = ? AND status = ?", userID, models.SessionCompleted).
		Order("started_at desc").
		Limit(5).
		Find(&recentQuizzes)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"streak": fiber.Map{
			"current_streak": state.CurrentStreak,
			"longest_streak": state.LongestStreak,
		},
		"rewards": fiber.Map{
			"xp":     state.XP,
			"level":  state.Level,
			"badges": state.Badges,
		},
		"progress": fiber.Map{
			"total_items": totalItems,
			"mastered":    mastered,
			"in_review":   totalItems - mastered,
		},
		"recent_quizzes": recentQuizzes,
	})
}

// GetReviewBank returns the student's non-mastered items, weakest first
func GetReviewBank(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	bank, err := reviewBank(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch review bank!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review bank fetched successfully!", bank)
}

// reviewBank joins every non-mastered mastery record with its content item,
// ordered by ascending confidence.
func reviewBank(db *gorm.DB, userID uint) ([]fiber.Map, error) {
	var records []models.MasteryRecord
	if err := db.Where("user_id = ? AND mastered = false", userID).
		Order("confidence_score asc, id asc").
		Find(&records).Error; err != nil {
		return nil, err
	}

	bank := make([]fiber.Map, 0, len(records))
	if len(records) == 0 {
		return bank, nil
	}

	contentIDs := make([]string, len(records))
	for i, rec := range records {
		contentIDs[i] = rec.ContentID
	}

	var items []models.Content
	if err := db.Where("content_id IN ?", contentIDs).Find(&items).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.Content, len(items))
	for _, item := range items {
		byID[item.ContentID] = item
	}

	for _, rec := range records {
		item, ok := byID[rec.ContentID]
		if !ok {
			continue
		}
		bank = append(bank, fiber.Map{
			"content":          item,
			"attempts":         rec.Attempts,
			"correct_count":    rec.CorrectCount,
			"confidence_score": rec.ConfidenceScore,
			"last_seen_at":     rec.LastSeenAt,
		})
	}
	return bank, nil
}
