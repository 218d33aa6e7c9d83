package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  *string   `json:"description"`
	Code         string    `json:"code" gorm:"uniqueIndex;not null"` // human-readable, e.g. "CS101"
	InstructorID string    `json:"instructorId" gorm:"not null;index"`
	IsActive     bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Course) TableName() string {
	return "courses"
}

func (c *Course) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type InsertCourse struct {
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	Code         string  `json:"code" validate:"required"`
	InstructorID string  `json:"instructorId" validate:"required"`
}

// CourseUpdate carries a partial update; nil fields are left unchanged.
type CourseUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Code        *string `json:"code"`
	IsActive    *bool   `json:"isActive"`
}

// Enrollment joins a student to a course. A (course, student) pair may
// only be enrolled once.
type Enrollment struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	CourseID   string    `json:"courseId" gorm:"not null;uniqueIndex:idx_enrollments_course_student"`
	StudentID  string    `json:"studentId" gorm:"not null;uniqueIndex:idx_enrollments_course_student"`
	EnrolledAt time.Time `json:"enrolledAt" gorm:"autoCreateTime"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

func (e *Enrollment) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
