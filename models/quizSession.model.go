package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	SessionActive    = "ACTIVE"
	SessionCompleted = "COMPLETED" // terminal, a completed session is never re-answered
)

// QuizSession is one quiz attempt by one student. CurrentIndex is the arbiter
// for concurrent submits: an answer only lands if it advances the index it saw.
type QuizSession struct {
	gorm.Model
	SessionID      string                      `json:"session_id" gorm:"uniqueIndex;not null"`
	UserID         uint                        `json:"user_id" gorm:"index;not null"`
	Grade          string                      `json:"grade"`
	Difficulty     string                      `json:"difficulty" gorm:"default:''"` // optional filter the session was started with
	ContentIDs     datatypes.JSONSlice[string] `json:"content_ids"`
	CurrentIndex   int                         `json:"current_index" gorm:"default:0"`
	Score          int                         `json:"score" gorm:"default:0"`
	TotalQuestions int                         `json:"total_questions" gorm:"default:0"`
	Status         string                      `json:"status" gorm:"default:'ACTIVE';index"`
	StartedAt      time.Time                   `json:"started_at"`
	CompletedAt    *time.Time                  `json:"completed_at"`
}
