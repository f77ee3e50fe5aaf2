package controllers

import (
	"testing"

	"voxquiz/config"
	"voxquiz/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	m.Run()
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Content{},
		&models.QuizSession{},
		&models.QuizAnswer{},
		&models.MasteryRecord{},
		&models.RewardState{},
		&models.Class{},
	))

	return db
}

func seedContent(t *testing.T, db *gorm.DB, contentID, grade, difficulty, topic, answer string) models.Content {
	t.Helper()

	item := models.Content{
		ContentID:    contentID,
		Grade:        grade,
		Term:         "Term1",
		Topic:        topic,
		Difficulty:   difficulty,
		QuestionText: "Question for " + contentID,
		AnswerText:   answer,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedMastery(t *testing.T, db *gorm.DB, userID uint, contentID string, confidence float64, mastered bool) {
	t.Helper()

	rec := models.MasteryRecord{
		UserID:          userID,
		ContentID:       contentID,
		ConfidenceScore: confidence,
		Attempts:        1,
		Mastered:        mastered,
	}
	require.NoError(t, db.Create(&rec).Error)
}
