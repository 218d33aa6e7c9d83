// Package storage declares the persistence contract the rest of the
// application depends on, independent of the backing store.
//
// Fetch and update operations return (nil, nil) when the target row does
// not exist: "not found" is a normal outcome, not an error. Writes that
// the store rejects for uniqueness or foreign-key reasons surface
// ErrConflict so callers can report a conflict instead of a fault.
package storage

import (
	"errors"

	"checkmate/models"
)

var (
	// ErrConflict marks a write rejected by a store constraint
	// (duplicate unique value or dangling foreign key).
	ErrConflict = errors.New("storage: constraint violation")

	// ErrInvalidValue marks an enumerated field outside its closed set,
	// rejected before the statement reaches the store.
	ErrInvalidValue = errors.New("storage: value outside allowed set")
)

type Storage interface {
	// Users
	GetUser(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(in models.InsertUser) (*models.User, error)

	// Courses
	GetCourse(id string) (*models.Course, error)
	GetCoursesByInstructor(instructorID string) ([]models.Course, error)
	GetEnrolledCourses(studentID string) ([]models.Course, error)
	CreateCourse(in models.InsertCourse) (*models.Course, error)
	UpdateCourse(id string, updates models.CourseUpdate) (*models.Course, error)

	// Enrollments
	EnrollStudent(courseID, studentID string) (*models.Enrollment, error)
	GetEnrollments(courseID string) ([]models.Enrollment, error)

	// Assignments
	GetAssignment(id string) (*models.Assignment, error)
	GetAssignmentsByCourse(courseID string) ([]models.Assignment, error)
	CreateAssignment(in models.InsertAssignment) (*models.Assignment, error)
	UpdateAssignment(id string, updates models.AssignmentUpdate) (*models.Assignment, error)

	// Submissions
	GetSubmission(id string) (*models.Submission, error)
	GetSubmissionsByAssignment(assignmentID string) ([]models.Submission, error)
	GetSubmissionsByStudent(studentID string) ([]models.Submission, error)
	CreateSubmission(in models.InsertSubmission) (*models.Submission, error)
	UpdateSubmission(id string, updates models.SubmissionUpdate) (*models.Submission, error)

	// Grades
	GetGradeBySubmission(submissionID string) (*models.Grade, error)
	CreateGrade(in models.InsertGrade) (*models.Grade, error)
}
