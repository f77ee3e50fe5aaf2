package controllers

import (
	"testing"
	"time"

	"voxquiz/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Content{},
		&models.QuizAnswer{},
		&models.MasteryRecord{},
		&models.Class{},
	))
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()
	student := models.User{Name: name, Email: email, Role: models.RoleStudent, Grade: "Year4"}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func seedTopicContent(t *testing.T, db *gorm.DB, contentID, topic string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Content{
		ContentID:    contentID,
		Grade:        "Year4",
		Difficulty:   "Low",
		Topic:        topic,
		QuestionText: "Question for " + contentID,
		AnswerText:   "Answer",
	}).Error)
}

func seedAnswer(t *testing.T, db *gorm.DB, userID uint, contentID string, correct bool) {
	t.Helper()
	require.NoError(t, db.Create(&models.QuizAnswer{
		SessionID:  "quiz_test",
		UserID:     userID,
		ContentID:  contentID,
		UserAnswer: "whatever",
		Correct:    correct,
		AnsweredAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}).Error)
}

func TestClassAnalytics_EmptyClass(t *testing.T) {
	db := setupTestDB(t)

	class := models.Class{
		ClassID:    "class_empty",
		ClassName:  "Year 4 Blue",
		ClassCode:  "ABC123",
		TeacherID:  9,
		StudentIDs: datatypes.NewJSONSlice([]uint{}),
	}
	require.NoError(t, db.Create(&class).Error)

	analytics, err := classAnalytics(db, &class)
	require.NoError(t, err)
	assert.Empty(t, analytics["students"])
	assert.Empty(t, analytics["topic_performance"])
}

func TestClassAnalytics_NoAttemptsYieldsEmptyAggregates(t *testing.T) {
	db := setupTestDB(t)
	student := seedStudent(t, db, "Ada", "ada@example.com")

	class := models.Class{
		ClassID:    "class_1",
		ClassName:  "Year 4 Blue",
		ClassCode:  "ABC123",
		TeacherID:  9,
		StudentIDs: datatypes.NewJSONSlice([]uint{student.ID}),
	}
	require.NoError(t, db.Create(&class).Error)

	analytics, err := classAnalytics(db, &class)
	require.NoError(t, err)

	students := analytics["students"].([]studentStats)
	require.Len(t, students, 1)
	assert.Equal(t, 0, students[0].TotalItems)
	assert.Equal(t, 0.0, students[0].AvgConfidence)

	assert.Empty(t, analytics["topic_performance"])
}

func TestClassAnalytics_TopicAccuracy(t *testing.T) {
	db := setupTestDB(t)
	ada := seedStudent(t, db, "Ada", "ada@example.com")
	ben := seedStudent(t, db, "Ben", "ben@example.com")

	seedTopicContent(t, db, "c1", "Space")
	seedTopicContent(t, db, "c2", "Space")
	seedTopicContent(t, db, "c3", "Biology")

	// Space: 3 correct out of 4, Biology: 0 out of 1
	seedAnswer(t, db, ada.ID, "c1", true)
	seedAnswer(t, db, ada.ID, "c2", true)
	seedAnswer(t, db, ben.ID, "c1", true)
	seedAnswer(t, db, ben.ID, "c2", false)
	seedAnswer(t, db, ada.ID, "c3", false)

	class := models.Class{
		ClassID:    "class_1",
		ClassName:  "Year 4 Blue",
		ClassCode:  "ABC123",
		TeacherID:  9,
		StudentIDs: datatypes.NewJSONSlice([]uint{ada.ID, ben.ID}),
	}
	require.NoError(t, db.Create(&class).Error)

	analytics, err := classAnalytics(db, &class)
	require.NoError(t, err)

	topics := analytics["topic_performance"].([]topicPerformance)
	require.Len(t, topics, 2)

	assert.Equal(t, "Biology", topics[0].Topic)
	assert.Equal(t, 0.0, topics[0].Accuracy)
	assert.Equal(t, 1, topics[0].TotalAttempts)

	assert.Equal(t, "Space", topics[1].Topic)
	assert.Equal(t, 0.75, topics[1].Accuracy)
	assert.Equal(t, 4, topics[1].TotalAttempts)
}

func TestClassAnalytics_IgnoresOutsiders(t *testing.T) {
	db := setupTestDB(t)
	ada := seedStudent(t, db, "Ada", "ada@example.com")
	outsider := seedStudent(t, db, "Eve", "eve@example.com")

	seedTopicContent(t, db, "c1", "Space")
	seedAnswer(t, db, ada.ID, "c1", true)
	seedAnswer(t, db, outsider.ID, "c1", false)

	class := models.Class{
		ClassID:    "class_1",
		ClassName:  "Year 4 Blue",
		ClassCode:  "ABC123",
		TeacherID:  9,
		StudentIDs: datatypes.NewJSONSlice([]uint{ada.ID}),
	}
	require.NoError(t, db.Create(&class).Error)

	analytics, err := classAnalytics(db, &class)
	require.NoError(t, err)

	topics := analytics["topic_performance"].([]topicPerformance)
	require.Len(t, topics, 1)
	assert.Equal(t, 1.0, topics[0].Accuracy)
	assert.Equal(t, 1, topics[0].TotalAttempts)
}

func TestClassAnalytics_StudentMasterySummary(t *testing.T) {
	db := setupTestDB(t)
	ada := seedStudent(t, db, "Ada", "ada@example.com")

	require.NoError(t, db.Create(&models.MasteryRecord{
		UserID: ada.ID, ContentID: "c1", ConfidenceScore: 0.9, Mastered: true,
	}).Error)
	require.NoError(t, db.Create(&models.MasteryRecord{
		UserID: ada.ID, ContentID: "c2", ConfidenceScore: 0.3,
	}).Error)

	class := models.Class{
		ClassID:    "class_1",
		ClassName:  "Year 4 Blue",
		ClassCode:  "ABC123",
		TeacherID:  9,
		StudentIDs: datatypes.NewJSONSlice([]uint{ada.ID}),
	}
	require.NoError(t, db.Create(&class).Error)

	analytics, err := classAnalytics(db, &class)
	require.NoError(t, err)

	students := analytics["students"].([]studentStats)
	require.Len(t, students, 1)
	assert.Equal(t, 2, students[0].TotalItems)
	assert.Equal(t, 1, students[0].Mastered)
	assert.Equal(t, 0.6, students[0].AvgConfidence)
}
