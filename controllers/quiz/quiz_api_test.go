package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"voxquiz/database"
	"voxquiz/middleware"
	"voxquiz/models"
	quizRoutes "voxquiz/routers/quizRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
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
	))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	quizRoutes.SetupQuizRoutes(app)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func TestQuizFlow(t *testing.T) {
	app, db := setupApp(t)

	student := models.User{Name: "Ada", Email: "ada@example.com", Role: models.RoleStudent, Grade: "Year4"}
	require.NoError(t, db.Create(&student).Error)
	token, err := middleware.GenerateJWT(student.ID, student.Name, student.Role, student.Email)
	require.NoError(t, err)

	db.Create(&models.Content{ContentID: "c1", Grade: "Year4", Difficulty: "Low", Topic: "Space", QuestionText: "Red planet?", AnswerText: "Mars"})
	db.Create(&models.Content{ContentID: "c2", Grade: "Year4", Difficulty: "Low", Topic: "Space", QuestionText: "Largest planet?", AnswerText: "Jupiter", Explanation: "It is a gas giant."})

	// start
	status, payload := doJSON(t, app, "POST", "/quiz/start", token, fiber.Map{
		"grade": "Year4", "question_count": 2,
	})
	require.Equal(t, http.StatusOK, status)
	data := payload["data"].(map[string]interface{})
	sessionID := data["session_id"].(string)
	require.Len(t, data["questions"].([]interface{}), 2)

	// correct answer with a leading article
	status, payload = doJSON(t, app, "POST", "/quiz/answer", token, fiber.Map{
		"session_id": sessionID, "content_id": "c1", "user_answer": "the mars",
	})
	require.Equal(t, http.StatusOK, status)
	data = payload["data"].(map[string]interface{})
	assert.Equal(t, true, data["correct"])
	assert.Equal(t, "Mars", data["correct_answer"])

	// duplicate submit for the same question is rejected and changes nothing
	status, _ = doJSON(t, app, "POST", "/quiz/answer", token, fiber.Map{
		"session_id": sessionID, "content_id": "c1", "user_answer": "mars again",
	})
	assert.Equal(t, http.StatusConflict, status)

	var session models.QuizSession
	require.NoError(t, db.Where("session_id = ?", sessionID).First(&session).Error)
	assert.Equal(t, 1, session.CurrentIndex, "rejected submit must not advance the session")

	// completing early is rejected under the default policy
	status, _ = doJSON(t, app, "POST", "/quiz/complete", token, fiber.Map{"session_id": sessionID})
	assert.Equal(t, http.StatusConflict, status)

	// wrong answer
	status, payload = doJSON(t, app, "POST", "/quiz/answer", token, fiber.Map{
		"session_id": sessionID, "content_id": "c2", "user_answer": "saturn",
	})
	require.Equal(t, http.StatusOK, status)
	data = payload["data"].(map[string]interface{})
	assert.Equal(t, false, data["correct"])
	assert.Equal(t, "It is a gas giant.", data["explanation"])

	// complete
	status, payload = doJSON(t, app, "POST", "/quiz/complete", token, fiber.Map{"session_id": sessionID})
	require.Equal(t, http.StatusOK, status)
	data = payload["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["score"])
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(10), data["xp_earned"])

	// a completed session is terminal
	status, _ = doJSON(t, app, "POST", "/quiz/complete", token, fiber.Map{"session_id": sessionID})
	assert.Equal(t, http.StatusConflict, status)
	status, _ = doJSON(t, app, "POST", "/quiz/answer", token, fiber.Map{
		"session_id": sessionID, "content_id": "c2", "user_answer": "jupiter",
	})
	assert.Equal(t, http.StatusConflict, status)

	// mastery records exist for both items
	var recs []models.MasteryRecord
	require.NoError(t, db.Where("user_id = ?", student.ID).Find(&recs).Error)
	assert.Len(t, recs, 2)
}

func TestQuizStart_RequiresStudentRole(t *testing.T) {
	app, db := setupApp(t)

	teacher := models.User{Name: "Mr. Jones", Email: "jones@example.com", Role: models.RoleTeacher}
	require.NoError(t, db.Create(&teacher).Error)
	token, err := middleware.GenerateJWT(teacher.ID, teacher.Name, teacher.Role, teacher.Email)
	require.NoError(t, err)

	status, _ := doJSON(t, app, "POST", "/quiz/start", token, fiber.Map{"grade": "Year4"})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestQuizStart_UnknownGrade(t *testing.T) {
	app, db := setupApp(t)

	student := models.User{Name: "Ada", Email: "ada2@example.com", Role: models.RoleStudent}
	require.NoError(t, db.Create(&student).Error)
	token, err := middleware.GenerateJWT(student.ID, student.Name, student.Role, student.Email)
	require.NoError(t, err)

	status, _ := doJSON(t, app, "POST", "/quiz/start", token, fiber.Map{"grade": "Year8"})
	assert.Equal(t, http.StatusNotFound, status)
}
