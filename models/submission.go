package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	SubmissionDraft     SubmissionStatus = "draft"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionGraded    SubmissionStatus = "graded"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionDraft, SubmissionSubmitted, SubmissionGraded:
		return true
	}
	return false
}

func (s SubmissionStatus) String() string {
	return string(s)
}

// Submission may carry free text, an uploaded file, or both.
type Submission struct {
	ID           string           `json:"id" gorm:"type:uuid;primaryKey"`
	AssignmentID string           `json:"assignmentId" gorm:"not null;index"`
	StudentID    string           `json:"studentId" gorm:"not null;index"`
	Content      *string          `json:"content"`
	FileName     *string          `json:"fileName"`
	FilePath     *string          `json:"filePath"`
	Status       SubmissionStatus `json:"status" gorm:"type:text;not null;default:'draft'"`
	SubmittedAt  *time.Time       `json:"submittedAt"` // set when the student finalizes
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func (Submission) TableName() string {
	return "submissions"
}

func (s *Submission) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type InsertSubmission struct {
	AssignmentID string           `json:"assignmentId" validate:"required"`
	StudentID    string           `json:"studentId" validate:"required"`
	Content      *string          `json:"content"`
	FileName     *string          `json:"fileName"`
	FilePath     *string          `json:"filePath"`
	Status       SubmissionStatus `json:"status" validate:"omitempty,oneof=draft submitted graded"` // defaults to draft
}

type SubmissionUpdate struct {
	Content     *string           `json:"content"`
	FileName    *string           `json:"fileName"`
	FilePath    *string           `json:"filePath"`
	Status      *SubmissionStatus `json:"status"`
	SubmittedAt *time.Time        `json:"submittedAt"`
}
