package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RewardState is the per-student XP/level/streak ledger, mutated only on
// session completion and by the daily streak-lapse job.
type RewardState struct {
	gorm.Model
	UserID         uint                        `json:"user_id" gorm:"uniqueIndex;not null"`
	XP             int                         `json:"xp" gorm:"default:0"`
	Level          int                         `json:"level" gorm:"default:1"` // always xp/100 + 1, the dashboard depends on it
	Badges         datatypes.JSONSlice[string] `json:"badges"`
	CurrentStreak  int                         `json:"current_streak" gorm:"default:0"`
	LongestStreak  int                         `json:"longest_streak" gorm:"default:0"`
	LastActiveDate *time.Time                  `json:"last_active_date"`
}
