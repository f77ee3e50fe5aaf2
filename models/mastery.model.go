package models

import (
	"time"

	"gorm.io/gorm"
)

// MasteryRecord tracks one student's confidence on one item. Never deleted,
// only updated; the review bank and class analytics read from it.
type MasteryRecord struct {
	gorm.Model
	UserID          uint    `json:"user_id" gorm:"not null;uniqueIndex:idx_mastery_user_content"`
	ContentID       string  `json:"content_id" gorm:"not null;uniqueIndex:idx_mastery_user_content"`
	ConfidenceScore float64 `json:"confidence_score" gorm:"default:0"` // always within [0,1]
	Attempts        int     `json:"attempts" gorm:"default:0"`
	CorrectCount    int     `json:"correct_count" gorm:"default:0"`
	Mastered        bool    `json:"mastered" gorm:"default:false;index"`
	LastSeenAt      *time.Time `json:"last_seen_at"`
}
