package controllers

import (
	"errors"
	"log"
	"time"

	"voxquiz/config"
	"voxquiz/database"
	"voxquiz/middleware"
	"voxquiz/models"
	"voxquiz/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// errStaleSubmit marks a submission that lost the current-index race
var errStaleSubmit = errors.New("stale submission")

// StartQuiz creates a new quiz session for the authenticated student
func StartQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		Grade         string `json:"grade"`
		Difficulty    string `json:"difficulty"`
		QuestionCount int    `json:"question_count"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	count := reqData.QuestionCount
	if count <= 0 {
		count = config.AppConfig.DefaultQuestionCount
	}

	items, err := selectQuizItems(database.Database.Db, userID, reqData.Grade, reqData.Difficulty, count)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No content found for this grade!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start quiz!", nil)
	}

	contentIDs := make([]string, len(items))
	for i, item := range items {
		contentIDs[i] = item.ContentID
	}

	session := models.QuizSession{
		SessionID:      utils.NewPublicID("quiz"),
		UserID:         userID,
		Grade:          reqData.Grade,
		Difficulty:     reqData.Difficulty,
		ContentIDs:     datatypes.NewJSONSlice(contentIDs),
		CurrentIndex:   0,
		TotalQuestions: len(contentIDs),
		Status:         models.SessionActive,
		StartedAt:      time.Now().UTC(),
	}

	if err := database.Database.Db.Create(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz started!", fiber.Map{
		"session_id": session.SessionID,
		"questions":  items,
	})
}

// SubmitAnswer scores one answer against the current question of a session
func SubmitAnswer(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		SessionID  string `json:"session_id"`
		ContentID  string `json:"content_id"`
		UserAnswer string `json:"user_answer"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var session models.QuizSession
	if err := db.Where("session_id = ? AND user_id = ?", reqData.SessionID, userID).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	if session.Status != models.SessionActive {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Session already completed!", nil)
	}
	if session.CurrentIndex >= len(session.ContentIDs) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "All questions already answered!", nil)
	}
	if session.ContentIDs[session.CurrentIndex] != reqData.ContentID {
		// stale or duplicate submission, e.g. a retried network call
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Answer does not match the current question!", nil)
	}

	var content models.Content
	if err := db.Where("content_id = ?", reqData.ContentID).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	correct := utils.MatchAnswer(reqData.UserAnswer, content.AnswerText, content.AlternateAnswers, utils.MatchOptions{
		MaxEditDistance: config.AppConfig.FuzzyMaxEdit,
		MinTokenOverlap: config.AppConfig.MinTokenOverlap,
	})

	now := time.Now().UTC()
	scoreDelta := 0
	if correct {
		scoreDelta = 1
	}

	// The conditional update is the arbiter between concurrent submits for
	// the same session: first writer wins, the loser sees zero rows.
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.QuizSession{}).
			Where("session_id = ? AND current_index = ? AND status = ?",
				session.SessionID, session.CurrentIndex, models.SessionActive).
			Updates(map[string]interface{}{
				"current_index": session.CurrentIndex + 1,
				"score":         gorm.Expr("score + ?", scoreDelta),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errStaleSubmit
		}

		answer := models.QuizAnswer{
			SessionID:  session.SessionID,
			UserID:     userID,
			ContentID:  content.ContentID,
			UserAnswer: reqData.UserAnswer,
			Correct:    correct,
			AnsweredAt: now,
		}
		return tx.Create(&answer).Error
	})
	if err != nil {
		if err == errStaleSubmit {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Answer does not match the current question!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit answer!", nil)
	}

	// The answer row above is the source of truth; a failed tracker update is
	// retried by replaying the answer log rather than failing the submission.
	if _, err := recordAttempt(db, userID, content.ContentID, correct, now); err != nil {
		log.Printf("Mastery update failed for user %d content %s: %v", userID, content.ContentID, err)
		if _, err := reconcileMastery(db, userID, content.ContentID); err != nil {
			log.Printf("Mastery reconcile failed for user %d content %s: %v", userID, content.ContentID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer submitted!", fiber.Map{
		"correct":        correct,
		"correct_answer": content.AnswerText,
		"explanation":    content.Explanation,
	})
}

// CompleteQuiz finalizes a session and credits rewards
func CompleteQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		SessionID string `json:"session_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var session models.QuizSession
	if err := db.Where("session_id = ? AND user_id = ?", reqData.SessionID, userID).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	if session.Status != models.SessionActive {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Quiz already completed!", nil)
	}
	if !config.AppConfig.AllowEarlyComplete && session.CurrentIndex < len(session.ContentIDs) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Quiz still has unanswered questions!", nil)
	}

	now := time.Now().UTC()

	result := db.Model(&models.QuizSession{}).
		Where("session_id = ? AND status = ?", session.SessionID, models.SessionActive).
		Updates(map[string]interface{}{
			"status":       models.SessionCompleted,
			"completed_at": now,
		})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete quiz!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Quiz already completed!", nil)
	}

	// Score from the answer records rather than the session counter
	var correctCount int64
	db.Model(&models.QuizAnswer{}).
		Where("session_id = ? AND correct = true", session.SessionID).
		Count(&correctCount)

	state, xpEarned, err := applyCompletion(db, userID, int(correctCount), session.TotalQuestions, now)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update rewards!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz completed!", fiber.Map{
		"score":     int(correctCount),
		"total":     session.TotalQuestions,
		"xp_earned": xpEarned,
		"rewards":   state,
	})
}

// selectQuizItems builds the question list for a new session in three tiers:
// review-bank items below the review threshold (weakest first), then unseen
// items for the grade in insertion order, and only if still short, the
// student's least-confident items regardless of grade.
func selectQuizItems(db *gorm.DB, userID uint, grade, difficulty string, count int) ([]models.Content, error) {
	var gradeCount int64
	if err := db.Model(&models.Content{}).Where("grade = ?", grade).Count(&gradeCount).Error; err != nil {
		return nil, err
	}
	if gradeCount == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	selected := make([]models.Content, 0, count)
	seen := make(map[string]bool)

	// Tier 1: review bank, weakest first
	var reviews []models.MasteryRecord
	if err := db.Where("user_id = ? AND confidence_score < ? AND mastered = false",
		userID, config.AppConfig.ReviewThreshold).
		Order("confidence_score asc, id asc").
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	if len(reviews) > 0 {
		reviewIDs := make([]string, len(reviews))
		for i, r := range reviews {
			reviewIDs[i] = r.ContentID
		}

		query := db.Where("content_id IN ? AND grade = ?", reviewIDs, grade)
		if difficulty != "" {
			query = query.Where("difficulty = ?", difficulty)
		}
		var items []models.Content
		if err := query.Find(&items).Error; err != nil {
			return nil, err
		}

		byID := make(map[string]models.Content, len(items))
		for _, item := range items {
			byID[item.ContentID] = item
		}
		// keep the weakest-first order of the mastery records
		for _, r := range reviews {
			if len(selected) >= count {
				break
			}
			if item, ok := byID[r.ContentID]; ok && !seen[item.ContentID] {
				selected = append(selected, item)
				seen[item.ContentID] = true
			}
		}
	}

	// Tier 2: not-yet-attempted items for the grade, insertion order
	if len(selected) < count {
		var attemptedIDs []string
		if err := db.Model(&models.MasteryRecord{}).
			Where("user_id = ?", userID).
			Pluck("content_id", &attemptedIDs).Error; err != nil {
			return nil, err
		}

		query := db.Where("grade = ?", grade)
		if difficulty != "" {
			query = query.Where("difficulty = ?", difficulty)
		}
		if len(attemptedIDs) > 0 {
			query = query.Where("content_id NOT IN ?", attemptedIDs)
		}

		var items []models.Content
		if err := query.Order("id asc").Limit(count - len(selected)).Find(&items).Error; err != nil {
			return nil, err
		}
		for _, item := range items {
			if !seen[item.ContentID] {
				selected = append(selected, item)
				seen[item.ContentID] = true
			}
		}
	}

	// Tier 3: least-confident items regardless of grade
	if len(selected) < count {
		var rest []models.MasteryRecord
		if err := db.Where("user_id = ?", userID).
			Order("confidence_score asc, id asc").
			Find(&rest).Error; err != nil {
			return nil, err
		}
		for _, r := range rest {
			if len(selected) >= count {
				break
			}
			if seen[r.ContentID] {
				continue
			}
			var item models.Content
			if err := db.Where("content_id = ?", r.ContentID).First(&item).Error; err != nil {
				continue
			}
			selected = append(selected, item)
			seen[item.ContentID] = true
		}
	}

	if len(selected) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return selected, nil
}
