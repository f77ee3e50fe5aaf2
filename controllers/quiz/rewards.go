package controllers

import (
	"time"

	"voxquiz/config"
	"voxquiz/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// applyCompletion credits a completed session to the student's reward ledger:
// XP, level, calendar-day streak and milestone badges. The ledger row is read
// under a row lock so two completions landing together serialize instead of
// overwriting each other's XP and streak.
func applyCompletion(db *gorm.DB, userID uint, score, total int, completedAt time.Time) (models.RewardState, int, error) {
	xpEarned := score*config.AppConfig.XPPerCorrect + config.AppConfig.XPCompletionBonus

	var state models.RewardState
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&state).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			state = models.RewardState{UserID: userID, Level: 1}
		}

		state.XP += xpEarned
		// The front-end derives next-level threshold and in-level progress
		// from this exact formula, keep it authoritative here.
		state.Level = state.XP/100 + 1

		today := dateOnly(completedAt)
		if state.LastActiveDate == nil {
			state.CurrentStreak = 1
		} else {
			switch daysBetween(dateOnly(*state.LastActiveDate), today) {
			case 0:
				// already counted today
			case 1:
				state.CurrentStreak++
			default:
				state.CurrentStreak = 1
			}
		}
		if state.CurrentStreak > state.LongestStreak {
			state.LongestStreak = state.CurrentStreak
		}
		state.LastActiveDate = &today

		awardBadges(&state)

		return tx.Save(&state).Error
	})

	return state, xpEarned, err
}

// awardBadges appends any newly earned milestone badges
func awardBadges(state *models.RewardState) {
	grant := func(badge string) {
		for _, b := range state.Badges {
			if b == badge {
				return
			}
		}
		state.Badges = append(state.Badges, badge)
	}

	grant("first-quiz")
	if state.CurrentStreak >= 7 {
		grant("week-streak")
	}
	if state.Level >= 5 {
		grant("level-5")
	}
}

// dateOnly truncates a timestamp to its UTC calendar day.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from one date to another.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
