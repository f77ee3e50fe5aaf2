package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Class groups students under a teacher. ClassCode is globally unique and
// immutable after creation; students join with it.
type Class struct {
	gorm.Model
	ClassID    string                    `json:"class_id" gorm:"uniqueIndex;not null"`
	ClassName  string                    `json:"class_name"`
	ClassCode  string                    `json:"class_code" gorm:"uniqueIndex;not null"`
	TeacherID  uint                      `json:"teacher_id" gorm:"index;not null"`
	StudentIDs datatypes.JSONSlice[uint] `json:"student_ids"`
}

// HasStudent reports class membership.
func (cl *Class) HasStudent(userID uint) bool {
	for _, id := range cl.StudentIDs {
		if id == userID {
			return true
		}
	}
	return false
}
