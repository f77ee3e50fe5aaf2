package utils

import (
	"log"
	"time"

	"voxquiz/database"
	"voxquiz/models"

	"github.com/robfig/cron/v3"
)

// InitializeStreakScheduler sets up the daily streak-lapse check and the
// weekly parent summary emails
func InitializeStreakScheduler() {
	log.Println("[STREAK-SCHEDULER] Initializing streak scheduler...")

	c := cron.New()

	// Shortly after midnight UTC: zero out streaks for students who missed a day
	c.AddFunc("10 0 * * *", func() {
		log.Println("[STREAK-SCHEDULER] Running daily streak lapse check...")
		LapseStaleStreaks(time.Now().UTC())
	})

	// Monday mornings: send parent progress summaries
	c.AddFunc("0 8 * * 1", func() {
		log.Println("[STREAK-SCHEDULER] Sending weekly parent summaries...")
		SendParentSummaries()
	})

	c.Start()
	log.Println("[STREAK-SCHEDULER] Streak scheduler started")
}

// LapseStaleStreaks resets the current streak of every student whose last
// completed session is more than one calendar day old, so dashboards do not
// show a streak that is already broken.
func LapseStaleStreaks(now time.Time) {
	db := database.Database.Db

	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	result := db.Model(&models.RewardState{}).
		Where("current_streak > 0 AND (last_active_date IS NULL OR last_active_date < ?)", cutoff).
		Update("current_streak", 0)
	if result.Error != nil {
		log.Printf("[STREAK-SCHEDULER] Error lapsing streaks: %v", result.Error)
		return
	}

	log.Printf("[STREAK-SCHEDULER] Lapsed %d stale streak(s)", result.RowsAffected)
}

// SendParentSummaries emails a progress digest to every parent email on file
func SendParentSummaries() {
	db := database.Database.Db

	var students []models.User
	if err := db.Where("role = ? AND parent_email <> '' AND is_deleted = false", models.RoleStudent).
		Find(&students).Error; err != nil {
		log.Printf("[STREAK-SCHEDULER] Error fetching students: %v", err)
		return
	}

	sent := 0
	for _, student := range students {
		var total, mastered int64
		db.Model(&models.MasteryRecord{}).Where("user_id = ?", student.ID).Count(&total)
		db.Model(&models.MasteryRecord{}).Where("user_id = ? AND mastered = true", student.ID).Count(&mastered)

		var state models.RewardState
		if err := db.Where("user_id = ?", student.ID).First(&state).Error; err != nil {
			state = models.RewardState{UserID: student.ID, Level: 1}
		}

		summary := ParentSummary{
			StudentName:   student.Name,
			TotalItems:    int(total),
			Mastered:      int(mastered),
			InReview:      int(total - mastered),
			CurrentStreak: state.CurrentStreak,
			Level:         state.Level,
			XP:            state.XP,
		}

		if err := SendParentSummaryEmail(student.ParentEmail, summary); err != nil {
			log.Printf("[STREAK-SCHEDULER] Error emailing parent of user %d: %v", student.ID, err)
			continue
		}
		sent++
	}

	log.Printf("[STREAK-SCHEDULER] Sent %d parent summary email(s)", sent)
}
