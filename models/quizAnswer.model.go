package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizAnswer is the append-only record of a single answered question. It
// outlives its session and is the source of truth for mastery and analytics.
type QuizAnswer struct {
	gorm.Model
	SessionID  string    `json:"session_id" gorm:"index;not null"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	ContentID  string    `json:"content_id" gorm:"index;not null"`
	UserAnswer string    `json:"user_answer"`
	Correct    bool      `json:"correct" gorm:"default:false"`
	AnsweredAt time.Time `json:"answered_at"`
}
