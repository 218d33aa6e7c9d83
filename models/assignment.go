package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Assignment struct {
	ID           string     `json:"id" gorm:"type:uuid;primaryKey"`
	CourseID     string     `json:"courseId" gorm:"not null;index"`
	Title        string     `json:"title" gorm:"not null"`
	Description  *string    `json:"description"`
	Instructions *string    `json:"instructions"`
	MaxScore     int        `json:"maxScore" gorm:"not null;default:100"`
	DueDate      *time.Time `json:"dueDate"`
	IsPublished  bool       `json:"isPublished" gorm:"not null;default:false"`
	Rubric       *string    `json:"rubric"` // JSON rubric document, stored opaquely
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (Assignment) TableName() string {
	return "assignments"
}

func (a *Assignment) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type InsertAssignment struct {
	CourseID     string     `json:"courseId" validate:"required"`
	Title        string     `json:"title" validate:"required"`
	Description  *string    `json:"description"`
	Instructions *string    `json:"instructions"`
	MaxScore     *int       `json:"maxScore" validate:"omitempty,min=0"` // defaults to 100
	DueDate      *time.Time `json:"dueDate"`
	IsPublished  *bool      `json:"isPublished"`
	Rubric       *string    `json:"rubric"`
}

type AssignmentUpdate struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Instructions *string    `json:"instructions"`
	MaxScore     *int       `json:"maxScore"`
	DueDate      *time.Time `json:"dueDate"`
	IsPublished  *bool      `json:"isPublished"`
	Rubric       *string    `json:"rubric"`
}
