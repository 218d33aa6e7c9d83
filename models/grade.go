package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GradedBy string

const (
	GradedByAI         GradedBy = "ai"
	GradedByInstructor GradedBy = "instructor"
)

func (g GradedBy) Valid() bool {
	switch g {
	case GradedByAI, GradedByInstructor:
		return true
	}
	return false
}

func (g GradedBy) String() string {
	return string(g)
}

// Grade is intended to be one-to-one with its submission.
type Grade struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	SubmissionID string    `json:"submissionId" gorm:"not null;index"`
	Score        *int      `json:"score"`
	Feedback     *string   `json:"feedback"`
	RubricScores *string   `json:"rubricScores"` // JSON per-criterion breakdown, stored opaquely
	GradedBy     GradedBy  `json:"gradedBy" gorm:"type:text;not null;default:'ai'"`
	GradedAt     time.Time `json:"gradedAt"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Grade) TableName() string {
	return "grades"
}

func (g *Grade) BeforeCreate(*gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

type InsertGrade struct {
	SubmissionID string   `json:"submissionId" validate:"required"`
	Score        *int     `json:"score" validate:"omitempty,min=0"`
	Feedback     *string  `json:"feedback"`
	RubricScores *string  `json:"rubricScores"`
	GradedBy     GradedBy `json:"gradedBy" validate:"omitempty,oneof=ai instructor"` // defaults to ai
}
