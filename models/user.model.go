package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
	RoleParent  = "PARENT"
)

type User struct {
	gorm.Model
	ProfileImage string `gorm:"default:''"`
	Name         string `gorm:"default:''"`
	Email        string `gorm:"unique;not null"`
	Role         string `gorm:"default:'STUDENT'"` // STUDENT, TEACHER, PARENT
	Grade        string `gorm:"default:''"`        // Year3..Year8, students only
	ParentEmail  string `gorm:"default:''"`        // weekly summary recipient, students only
	LastLogin    *time.Time
	IsDeleted    bool `gorm:"default:false"`
}
