package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Grades covered by the syllabus, in ascending order
var ValidGrades = []string{"Year3", "Year4", "Year5", "Year6", "Year7", "Year8"}

const (
	DifficultyLow    = "Low"
	DifficultyMedium = "Medium"
	DifficultyHigh   = "High"
)

// Content represents one published quiz item. Records are immutable once
// published; uploads replace the whole row keyed by ContentID.
type Content struct {
	gorm.Model
	ContentID        string                      `json:"content_id" gorm:"uniqueIndex;not null"`
	Grade            string                      `json:"grade" gorm:"index;not null"`
	Term             string                      `json:"term" gorm:"index"`
	Topic            string                      `json:"topic" gorm:"index"`
	Subtopic         string                      `json:"subtopic" gorm:"default:''"`
	Difficulty       string                      `json:"difficulty" gorm:"index;not null"` // Low, Medium, High
	QuestionText     string                      `json:"question_text" gorm:"not null"`
	AnswerText       string                      `json:"answer_text" gorm:"not null"`
	Explanation      string                      `json:"explanation" gorm:"default:''"`
	Source           string                      `json:"source" gorm:"default:''"`
	Tags             datatypes.JSONSlice[string] `json:"tags"`
	AlternateAnswers datatypes.JSONSlice[string] `json:"alternate_answers"` // order matters, checked after the canonical answer
}

func ValidGrade(grade string) bool {
	for _, g := range ValidGrades {
		if g == grade {
			return true
		}
	}
	return false
}

func ValidDifficulty(difficulty string) bool {
	return difficulty == DifficultyLow || difficulty == DifficultyMedium || difficulty == DifficultyHigh
}
