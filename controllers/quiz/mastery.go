package controllers

import (
	"time"

	"voxquiz/config"
	"voxquiz/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recordAttempt updates a student's mastery record after one answered
// question. The confidence score moves as a smoothed update rather than a
// plain ratio, so one lucky answer after many failures cannot flip an item to
// mastered. Wrong answers step harder than right ones step up; that asymmetry
// is what keeps shaky items in the review bank. The record is read under a
// row lock so concurrent attempts serialize instead of losing counts.
func recordAttempt(db *gorm.DB, userID uint, contentID string, correct bool, seenAt time.Time) (models.MasteryRecord, error) {
	var rec models.MasteryRecord

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND content_id = ?", userID, contentID).First(&rec).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			rec = models.MasteryRecord{UserID: userID, ContentID: contentID}
		}

		applyAttempt(&rec, correct)
		rec.LastSeenAt = &seenAt

		return tx.Save(&rec).Error
	})

	return rec, err
}

// applyAttempt folds one answer into the record's counters and confidence
func applyAttempt(rec *models.MasteryRecord, correct bool) {
	rec.Attempts++
	if correct {
		rec.CorrectCount++
		rec.ConfidenceScore += config.AppConfig.ConfidenceGain * (1 - rec.ConfidenceScore)
	} else {
		rec.ConfidenceScore -= config.AppConfig.ConfidencePenalty * rec.ConfidenceScore
	}
	rec.ConfidenceScore = clamp01(rec.ConfidenceScore)
	rec.Mastered = rec.ConfidenceScore >= config.AppConfig.MasteryThreshold
}

// reconcileMastery rebuilds a student's mastery record by replaying the
// answer log for one item, oldest first. The answer rows are the source of
// truth; this is the retry path when the incremental update fails.
func reconcileMastery(db *gorm.DB, userID uint, contentID string) (models.MasteryRecord, error) {
	var rec models.MasteryRecord

	err := db.Transaction(func(tx *gorm.DB) error {
		var answers []models.QuizAnswer
		if err := tx.Where("user_id = ? AND content_id = ?", userID, contentID).
			Order("answered_at asc, id asc").
			Find(&answers).Error; err != nil {
			return err
		}
		if len(answers) == 0 {
			// nothing recorded, nothing to rebuild
			return nil
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND content_id = ?", userID, contentID).First(&rec).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			rec = models.MasteryRecord{UserID: userID, ContentID: contentID}
		}

		rec.Attempts = 0
		rec.CorrectCount = 0
		rec.ConfidenceScore = 0
		rec.Mastered = false
		for i := range answers {
			applyAttempt(&rec, answers[i].Correct)
		}
		rec.LastSeenAt = &answers[len(answers)-1].AnsweredAt

		return tx.Save(&rec).Error
	})

	return rec, err
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
