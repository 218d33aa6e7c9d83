package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"checkmate/models"
)

// GormStorage implements Storage against a relational database through
// GORM. The connection must be opened with TranslateError enabled so
// constraint violations can be told apart from other failures.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

// translateErr maps driver constraint violations onto ErrConflict and
// passes everything else through as a store fault.
func translateErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

func getOne[T any](db *gorm.DB, query string, args ...interface{}) (*T, error) {
	var row T
	if err := db.Where(query, args...).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Users

func (s *GormStorage) GetUser(id string) (*models.User, error) {
	return getOne[models.User](s.db, "id = ?", id)
}

func (s *GormStorage) GetUserByEmail(email string) (*models.User, error) {
	return getOne[models.User](s.db, "email = ?", email)
}

func (s *GormStorage) CreateUser(in models.InsertUser) (*models.User, error) {
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: role %q", ErrInvalidValue, in.Role)
	}

	user := models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      in.Role,
		StudentID: in.StudentID,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

// Courses

func (s *GormStorage) GetCourse(id string) (*models.Course, error) {
	return getOne[models.Course](s.db, "id = ?", id)
}

func (s *GormStorage) GetCoursesByInstructor(instructorID string) ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Where("instructor_id = ?", instructorID).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStorage) GetEnrolledCourses(studentID string) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.student_id = ?", studentID).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *GormStorage) CreateCourse(in models.InsertCourse) (*models.Course, error) {
	course := models.Course{
		Title:        in.Title,
		Description:  in.Description,
		Code:         in.Code,
		InstructorID: in.InstructorID,
		IsActive:     true,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return nil, translateErr(err)
	}
	return &course, nil
}

func (s *GormStorage) UpdateCourse(id string, updates models.CourseUpdate) (*models.Course, error) {
	values := map[string]interface{}{"updated_at": time.Now().UTC()}
	if updates.Title != nil {
		values["title"] = *updates.Title
	}
	if updates.Description != nil {
		values["description"] = *updates.Description
	}
	if updates.Code != nil {
		values["code"] = *updates.Code
	}
	if updates.IsActive != nil {
		values["is_active"] = *updates.IsActive
	}
	return applyUpdate[models.Course](s, id, values)
}

// applyUpdate merges the supplied column values into the row identified
// by id and returns the updated row, or (nil, nil) when no row matched.
func applyUpdate[T any](s *GormStorage, id string, values map[string]interface{}) (*T, error) {
	var model T
	res := s.db.Model(&model).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return nil, translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return getOne[T](s.db, "id = ?", id)
}

// Enrollments

func (s *GormStorage) EnrollStudent(courseID, studentID string) (*models.Enrollment, error) {
	enrollment := models.Enrollment{
		CourseID:  courseID,
		StudentID: studentID,
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, translateErr(err)
	}
	return &enrollment, nil
}

func (s *GormStorage) GetEnrollments(courseID string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("course_id = ?", courseID).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// Assignments

func (s *GormStorage) GetAssignment(id string) (*models.Assignment, error) {
	return getOne[models.Assignment](s.db, "id = ?", id)
}

func (s *GormStorage) GetAssignmentsByCourse(courseID string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := s.db.Where("course_id = ?", courseID).Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *GormStorage) CreateAssignment(in models.InsertAssignment) (*models.Assignment, error) {
	assignment := models.Assignment{
		CourseID:     in.CourseID,
		Title:        in.Title,
		Description:  in.Description,
		Instructions: in.Instructions,
		MaxScore:     100,
		DueDate:      in.DueDate,
		Rubric:       in.Rubric,
	}
	if in.MaxScore != nil {
		assignment.MaxScore = *in.MaxScore
	}
	if in.IsPublished != nil {
		assignment.IsPublished = *in.IsPublished
	}
	if err := s.db.Create(&assignment).Error; err != nil {
		return nil, translateErr(err)
	}
	return &assignment, nil
}

func (s *GormStorage) UpdateAssignment(id string, updates models.AssignmentUpdate) (*models.Assignment, error) {
	values := map[string]interface{}{"updated_at": time.Now().UTC()}
	if updates.Title != nil {
		values["title"] = *updates.Title
	}
	if updates.Description != nil {
		values["description"] = *updates.Description
	}
	if updates.Instructions != nil {
		values["instructions"] = *updates.Instructions
	}
	if updates.MaxScore != nil {
		values["max_score"] = *updates.MaxScore
	}
	if updates.DueDate != nil {
		values["due_date"] = *updates.DueDate
	}
	if updates.IsPublished != nil {
		values["is_published"] = *updates.IsPublished
	}
	if updates.Rubric != nil {
		values["rubric"] = *updates.Rubric
	}
	return applyUpdate[models.Assignment](s, id, values)
}

// Submissions

func (s *GormStorage) GetSubmission(id string) (*models.Submission, error) {
	return getOne[models.Submission](s.db, "id = ?", id)
}

func (s *GormStorage) GetSubmissionsByAssignment(assignmentID string) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.db.Where("assignment_id = ?", assignmentID).Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (s *GormStorage) GetSubmissionsByStudent(studentID string) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.db.Where("student_id = ?", studentID).Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (s *GormStorage) CreateSubmission(in models.InsertSubmission) (*models.Submission, error) {
	status := in.Status
	if status == "" {
		status = models.SubmissionDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidValue, status)
	}

	submission := models.Submission{
		AssignmentID: in.AssignmentID,
		StudentID:    in.StudentID,
		Content:      in.Content,
		FileName:     in.FileName,
		FilePath:     in.FilePath,
		Status:       status,
	}
	if err := s.db.Create(&submission).Error; err != nil {
		return nil, translateErr(err)
	}
	return &submission, nil
}

func (s *GormStorage) UpdateSubmission(id string, updates models.SubmissionUpdate) (*models.Submission, error) {
	values := map[string]interface{}{"updated_at": time.Now().UTC()}
	if updates.Content != nil {
		values["content"] = *updates.Content
	}
	if updates.FileName != nil {
		values["file_name"] = *updates.FileName
	}
	if updates.FilePath != nil {
		values["file_path"] = *updates.FilePath
	}
	if updates.Status != nil {
		if !updates.Status.Valid() {
			return nil, fmt.Errorf("%w: status %q", ErrInvalidValue, *updates.Status)
		}
		values["status"] = *updates.Status
	}
	if updates.SubmittedAt != nil {
		values["submitted_at"] = *updates.SubmittedAt
	}
	return applyUpdate[models.Submission](s, id, values)
}

// Grades

func (s *GormStorage) GetGradeBySubmission(submissionID string) (*models.Grade, error) {
	return getOne[models.Grade](s.db, "submission_id = ?", submissionID)
}

func (s *GormStorage) CreateGrade(in models.InsertGrade) (*models.Grade, error) {
	gradedBy := in.GradedBy
	if gradedBy == "" {
		gradedBy = models.GradedByAI
	}
	if !gradedBy.Valid() {
		return nil, fmt.Errorf("%w: gradedBy %q", ErrInvalidValue, gradedBy)
	}

	grade := models.Grade{
		SubmissionID: in.SubmissionID,
		Score:        in.Score,
		Feedback:     in.Feedback,
		RubricScores: in.RubricScores,
		GradedBy:     gradedBy,
		GradedAt:     time.Now().UTC(),
	}
	if err := s.db.Create(&grade).Error; err != nil {
		return nil, translateErr(err)
	}
	return &grade, nil
}
