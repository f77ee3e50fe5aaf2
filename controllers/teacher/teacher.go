package controllers

import (
	"math"

	"voxquiz/database"
	"voxquiz/middleware"
	"voxquiz/models"
	"voxquiz/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateClass creates a new class with a generated join code
func CreateClass(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		ClassName string `json:"class_name"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	class := models.Class{
		ClassID:    utils.NewPublicID("class"),
		ClassName:  reqData.ClassName,
		ClassCode:  utils.NewClassCode(),
		TeacherID:  teacherID,
		StudentIDs: datatypes.NewJSONSlice([]uint{}),
	}

	if err := database.Database.Db.Create(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create class!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Class created!", class)
}

// GetClasses lists the teacher's classes
func GetClasses(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var classes []models.Class
	if err := database.Database.Db.Where("teacher_id = ?", teacherID).Find(&classes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Classes fetched successfully!", classes)
}

// AddStudentToClass adds a student to the teacher's class by email
func AddStudentToClass(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classID := c.Params("class_id")

	reqData := new(struct {
		StudentEmail string `json:"student_email"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("class_id = ? AND teacher_id = ?", classID, teacherID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	var student models.User
	if err := db.Where("email = ? AND role = ? AND is_deleted = false",
		reqData.StudentEmail, models.RoleStudent).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	if class.HasStudent(student.ID) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Student already in class!", class)
	}

	class.StudentIDs = append(class.StudentIDs, student.ID)
	if err := db.Save(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student added!", class)
}

// GetClassAnalytics aggregates attempt history and mastery across a class
func GetClassAnalytics(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	classID := c.Params("class_id")
	db := database.Database.Db

	var class models.Class
	if err := db.Where("class_id = ? AND teacher_id = ?", classID, teacherID).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	analytics, err := classAnalytics(db, &class)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute analytics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analytics fetched successfully!", analytics)
}

// GetStudentProgress returns one student's full progress for the teacher view
func GetStudentProgress(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	studentID, err := c.ParamsInt("student_id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	db := database.Database.Db

	var student models.User
	if err := db.Where("id = ? AND role = ? AND is_deleted = false",
		studentID, models.RoleStudent).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var records []models.MasteryRecord
	db.Where("user_id = ?", student.ID).Order("confidence_score asc, id asc").Find(&records)

	var state models.RewardState
	if err := db.Where("user_id = ?", student.ID).First(&state).Error; err != nil {
		state = models.RewardState{UserID: student.ID, Level: 1}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"student":  student,
		"progress": records,
		"streak": fiber.Map{
			"current_streak": state.CurrentStreak,
			"longest_streak": state.LongestStreak,
		},
		"rewards": fiber.Map{
			"xp":    state.XP,
			"level": state.Level,
		},
	})
}

type topicPerformance struct {
	Topic         string  `json:"topic"`
	Accuracy      float64 `json:"accuracy"`
	TotalAttempts int     `json:"total_attempts"`
}

type studentStats struct {
	UserID        uint    `json:"user_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	TotalItems    int     `json:"total_items"`
	Mastered      int     `json:"mastered"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// classAnalytics computes topic accuracy from the class's attempt history and
// per-student mastery summaries. A class with no attempts yields empty
// aggregates rather than an error.
func classAnalytics(db *gorm.DB, class *models.Class) (fiber.Map, error) {
	studentIDs := []uint(class.StudentIDs)
	if len(studentIDs) == 0 {
		return fiber.Map{
			"class":             class,
			"students":          []studentStats{},
			"topic_performance": []topicPerformance{},
		}, nil
	}

	var students []models.User
	if err := db.Where("id IN ? AND is_deleted = false", studentIDs).Find(&students).Error; err != nil {
		return nil, err
	}

	var records []models.MasteryRecord
	if err := db.Where("user_id IN ?", studentIDs).Find(&records).Error; err != nil {
		return nil, err
	}

	stats := make([]studentStats, 0, len(students))
	for _, student := range students {
		total := 0
		mastered := 0
		confidenceSum := 0.0
		for _, rec := range records {
			if rec.UserID != student.ID {
				continue
			}
			total++
			confidenceSum += rec.ConfidenceScore
			if rec.Mastered {
				mastered++
			}
		}
		avg := 0.0
		if total > 0 {
			avg = round2(confidenceSum / float64(total))
		}
		stats = append(stats, studentStats{
			UserID:        student.ID,
			Name:          student.Name,
			Email:         student.Email,
			TotalItems:    total,
			Mastered:      mastered,
			AvgConfidence: avg,
		})
	}

	var rows []struct {
		Topic   string
		Total   int
		Correct int
	}
	if err := db.Model(&models.QuizAnswer{}).
		Select("contents.topic as topic, count(*) as total, sum(case when quiz_answers.correct then 1 else 0 end) as correct").
		Joins("JOIN contents ON contents.content_id = quiz_answers.content_id").
		Where("quiz_answers.user_id IN ?", studentIDs).
		Group("contents.topic").
		Order("contents.topic asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	topics := make([]topicPerformance, 0, len(rows))
	for _, row := range rows {
		accuracy := 0.0
		if row.Total > 0 {
			accuracy = round2(float64(row.Correct) / float64(row.Total))
		}
		topics = append(topics, topicPerformance{
			Topic:         row.Topic,
			Accuracy:      accuracy,
			TotalAttempts: row.Total,
		})
	}

	return fiber.Map{
		"class":             class,
		"students":          stats,
		"topic_performance": topics,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
