package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkmate/models"
)

func TestInsertUserValid(t *testing.T) {
	in := models.InsertUser{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret123",
		Role:      models.RoleStudent,
	}
	assert.NoError(t, Struct(in))
}

func TestInsertUserMissingFields(t *testing.T) {
	err := Struct(models.InsertUser{Email: "ada@example.com"})
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "firstName")
	assert.Contains(t, verr.Fields, "lastName")
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "role")
	assert.NotContains(t, verr.Fields, "email")
}

func TestInsertUserBadEmail(t *testing.T) {
	in := models.InsertUser{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "not-an-email",
		Password:  "secret123",
		Role:      models.RoleStudent,
	}
	err := Struct(in)
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "email")
}

func TestInsertUserBadRole(t *testing.T) {
	in := models.InsertUser{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret123",
		Role:      models.Role("teacher"),
	}
	err := Struct(in)
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "role")
}

func TestInsertCourseRequiredFields(t *testing.T) {
	err := Struct(models.InsertCourse{Title: "Algorithms"})
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "code")
	assert.Contains(t, verr.Fields, "instructorId")
}

func TestInsertSubmissionStatusSet(t *testing.T) {
	in := models.InsertSubmission{
		AssignmentID: "a-1",
		StudentID:    "s-1",
		Status:       models.SubmissionStatus("pending"),
	}
	err := Struct(in)
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "status")

	// empty status is fine, the store defaults it to draft
	in.Status = ""
	assert.NoError(t, Struct(in))
}

func TestInsertGradeGradedBySet(t *testing.T) {
	err := Struct(models.InsertGrade{SubmissionID: "sub-1", GradedBy: models.GradedBy("robot")})
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "gradedBy")

	assert.NoError(t, Struct(models.InsertGrade{SubmissionID: "sub-1"}))
	assert.NoError(t, Struct(models.InsertGrade{SubmissionID: "sub-1", GradedBy: models.GradedByInstructor}))
}
