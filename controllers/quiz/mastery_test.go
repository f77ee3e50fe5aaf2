package controllers

import (
	"testing"
	"time"

	"voxquiz/config"
	"voxquiz/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAttempt_CorrectMovesConfidenceUp(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now().UTC()

	prev := 0.0
	for i := 0; i < 20; i++ {
		rec, err := recordAttempt(db, 1, "c1", true, now)
		require.NoError(t, err)

		assert.Greater(t, rec.ConfidenceScore, prev, "confidence must rise on every correct answer")
		assert.LessOrEqual(t, rec.ConfidenceScore, 1.0, "confidence never exceeds 1")
		prev = rec.ConfidenceScore
	}

	rec, err := recordAttempt(db, 1, "c1", true, now)
	require.NoError(t, err)
	assert.Equal(t, 21, rec.Attempts)
	assert.Equal(t, 21, rec.CorrectCount)
	assert.True(t, rec.Mastered)
}

func TestRecordAttempt_WrongMovesConfidenceDown(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now().UTC()

	// build some confidence first
	for i := 0; i < 5; i++ {
		_, err := recordAttempt(db, 1, "c1", true, now)
		require.NoError(t, err)
	}

	prev := 1.0
	for i := 0; i < 10; i++ {
		rec, err := recordAttempt(db, 1, "c1", false, now)
		require.NoError(t, err)

		assert.Less(t, rec.ConfidenceScore, prev, "confidence must fall on every wrong answer")
		assert.GreaterOrEqual(t, rec.ConfidenceScore, 0.0, "confidence never drops below 0")
		assert.False(t, rec.Mastered)
		prev = rec.ConfidenceScore
	}
}

func TestRecordAttempt_SingleCorrectDoesNotMaster(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now().UTC()

	for i := 0; i < 8; i++ {
		_, err := recordAttempt(db, 1, "c1", false, now)
		require.NoError(t, err)
	}

	rec, err := recordAttempt(db, 1, "c1", true, now)
	require.NoError(t, err)

	assert.False(t, rec.Mastered, "one right answer after many failures must not mark mastery")
	assert.Less(t, rec.ConfidenceScore, config.AppConfig.MasteryThreshold)
}

func TestRecordAttempt_MasteredAtThreshold(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now().UTC()

	mastered := false
	for i := 0; i < 30; i++ {
		rec, err := recordAttempt(db, 1, "c1", true, now)
		require.NoError(t, err)

		if rec.Mastered {
			assert.GreaterOrEqual(t, rec.ConfidenceScore, config.AppConfig.MasteryThreshold)
			mastered = true
			break
		}
	}
	assert.True(t, mastered, "repeated correct answers must eventually reach mastery")
}

func TestReconcileMastery_ReplaysAnswerLog(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i, correct := range []bool{true, true, false} {
		require.NoError(t, db.Create(&models.QuizAnswer{
			SessionID:  "quiz_a",
			UserID:     1,
			ContentID:  "c1",
			UserAnswer: "whatever",
			Correct:    correct,
			AnsweredAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	rec, err := reconcileMastery(db, 1, "c1")
	require.NoError(t, err)

	assert.Equal(t, 3, rec.Attempts)
	assert.Equal(t, 2, rec.CorrectCount)
	// 0 -> 0.3 -> 0.51 -> 0.255 with the default gain/penalty steps
	assert.InDelta(t, 0.255, rec.ConfidenceScore, 1e-9)
	require.NotNil(t, rec.LastSeenAt)
	assert.Equal(t, base.Add(2*time.Minute), rec.LastSeenAt.UTC())
}

func TestReconcileMastery_RepairsDivergedRecord(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&models.QuizAnswer{
			SessionID:  "quiz_a",
			UserID:     1,
			ContentID:  "c1",
			UserAnswer: "whatever",
			Correct:    true,
			AnsweredAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}
	// record that fell behind the answer log
	seedMastery(t, db, 1, "c1", 0.05, false)

	rec, err := reconcileMastery(db, 1, "c1")
	require.NoError(t, err)

	assert.Equal(t, 2, rec.Attempts)
	assert.Equal(t, 2, rec.CorrectCount)
	assert.InDelta(t, 0.51, rec.ConfidenceScore, 1e-9)

	var count int64
	db.Model(&models.MasteryRecord{}).Where("user_id = ? AND content_id = ?", 1, "c1").Count(&count)
	assert.Equal(t, int64(1), count, "replay updates the existing row, never duplicates it")
}

func TestReconcileMastery_NoAnswers(t *testing.T) {
	db := setupTestDB(t)

	_, err := reconcileMastery(db, 1, "c1")
	require.NoError(t, err)

	var count int64
	db.Model(&models.MasteryRecord{}).Count(&count)
	assert.Equal(t, int64(0), count, "no answer log means no record to invent")
}

func TestReconcileMastery_AgreesWithIncrementalUpdates(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sequence := []bool{true, false, true, true, false, true}

	var incremental float64
	for i, correct := range sequence {
		at := base.Add(time.Duration(i) * time.Minute)
		rec, err := recordAttempt(db, 1, "c1", correct, at)
		require.NoError(t, err)
		incremental = rec.ConfidenceScore

		require.NoError(t, db.Create(&models.QuizAnswer{
			SessionID:  "quiz_a",
			UserID:     1,
			ContentID:  "c1",
			UserAnswer: "whatever",
			Correct:    correct,
			AnsweredAt: at,
		}).Error)
	}

	rec, err := reconcileMastery(db, 1, "c1")
	require.NoError(t, err)
	assert.InDelta(t, incremental, rec.ConfidenceScore, 1e-9)
	assert.Equal(t, len(sequence), rec.Attempts)
}

func TestRecordAttempt_TracksPerItem(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now().UTC()

	_, err := recordAttempt(db, 1, "c1", true, now)
	require.NoError(t, err)
	_, err = recordAttempt(db, 1, "c2", false, now)
	require.NoError(t, err)
	recOther, err := recordAttempt(db, 2, "c1", false, now)
	require.NoError(t, err)

	rec1, err := recordAttempt(db, 1, "c1", true, now)
	require.NoError(t, err)

	assert.Equal(t, 2, rec1.Attempts)
	assert.Equal(t, 2, rec1.CorrectCount)
	assert.Equal(t, 1, recOther.Attempts, "records are scoped per student")
}
