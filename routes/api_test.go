package routes

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniqueCode(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}

func TestRegisterAndLogin(t *testing.T) {
	email := fmt.Sprintf("login-%s@example.com", uuid.NewString()[:8])

	resp, body := doRequest(t, "POST", "/api/auth/register", "", map[string]interface{}{
		"firstName": "Grace",
		"lastName":  "Hopper",
		"email":     email,
		"password":  "secret123",
		"role":      "instructor",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	resp, body = doRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, email, user["email"])

	resp, _ = doRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterValidationFailure(t *testing.T) {
	resp, body := doRequest(t, "POST", "/api/auth/register", "", map[string]interface{}{
		"firstName": "No",
		"lastName":  "Email",
		"password":  "secret123",
		"role":      "banana",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	details := body["details"].(map[string]interface{})
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "role")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	payload := map[string]interface{}{
		"firstName": "Dup",
		"lastName":  "User",
		"email":     fmt.Sprintf("dup-%s@example.com", uuid.NewString()[:8]),
		"password":  "secret123",
		"role":      "student",
	}

	resp, _ := doRequest(t, "POST", "/api/auth/register", "", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, "POST", "/api/auth/register", "", payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRequiresToken(t *testing.T) {
	resp, _ := doRequest(t, "GET", "/api/courses/enrolled", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCourseEnrollmentFlow(t *testing.T) {
	instructorToken, _ := registerUser(t, "instructor")
	studentToken, student := registerUser(t, "student")

	resp, body := doRequest(t, "POST", "/api/courses", instructorToken, map[string]interface{}{
		"title": "Operating Systems",
		"code":  uniqueCode("OS"),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	course := body["data"].(map[string]interface{})
	courseID := course["id"].(string)
	assert.Equal(t, true, course["isActive"])

	// students cannot create courses
	resp, _ = doRequest(t, "POST", "/api/courses", studentToken, map[string]interface{}{
		"title": "Rogue Course",
		"code":  uniqueCode("RG"),
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, "POST", "/api/courses/"+courseID+"/enroll", studentToken, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// enrolling twice conflicts
	resp, _ = doRequest(t, "POST", "/api/courses/"+courseID+"/enroll", studentToken, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, body = doRequest(t, "GET", "/api/courses/enrolled", studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	enrolled := body["data"].([]interface{})
	require.Len(t, enrolled, 1)
	assert.Equal(t, courseID, enrolled[0].(map[string]interface{})["id"])

	resp, body = doRequest(t, "GET", "/api/courses/"+courseID+"/enrollments", instructorToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	enrollments := body["data"].([]interface{})
	require.Len(t, enrollments, 1)
	assert.Equal(t, student["id"], enrollments[0].(map[string]interface{})["studentId"])

	resp, body = doRequest(t, "GET", "/api/courses/teaching", instructorToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	teaching := body["data"].([]interface{})
	require.Len(t, teaching, 1)
}

func TestUpdateCourse(t *testing.T) {
	instructorToken, _ := registerUser(t, "instructor")

	resp, body := doRequest(t, "POST", "/api/courses", instructorToken, map[string]interface{}{
		"title": "Databases",
		"code":  uniqueCode("DB"),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	courseID := body["data"].(map[string]interface{})["id"].(string)

	resp, body = doRequest(t, "PATCH", "/api/courses/"+courseID, instructorToken, map[string]interface{}{
		"isActive": false,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := body["data"].(map[string]interface{})
	assert.Equal(t, false, updated["isActive"])
	assert.Equal(t, "Databases", updated["title"])

	resp, _ = doRequest(t, "PATCH", "/api/courses/"+uuid.NewString(), instructorToken, map[string]interface{}{
		"isActive": false,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGradingFlow(t *testing.T) {
	instructorToken, _ := registerUser(t, "instructor")
	studentToken, _ := registerUser(t, "student")

	resp, body := doRequest(t, "POST", "/api/courses", instructorToken, map[string]interface{}{
		"title": "Compilers",
		"code":  uniqueCode("CMP"),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	courseID := body["data"].(map[string]interface{})["id"].(string)

	resp, body = doRequest(t, "POST", "/api/assignments", instructorToken, map[string]interface{}{
		"courseId": courseID,
		"title":    "Parser Project",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assignment := body["data"].(map[string]interface{})
	assignmentID := assignment["id"].(string)
	assert.Equal(t, float64(100), assignment["maxScore"])

	resp, body = doRequest(t, "POST", "/api/submissions", studentToken, map[string]interface{}{
		"assignmentId": assignmentID,
		"content":      "my parser",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	submission := body["data"].(map[string]interface{})
	submissionID := submission["id"].(string)
	assert.Equal(t, "draft", submission["status"])
	assert.Nil(t, submission["submittedAt"])

	resp, body = doRequest(t, "PATCH", "/api/submissions/"+submissionID, studentToken, map[string]interface{}{
		"status": "submitted",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	submission = body["data"].(map[string]interface{})
	assert.Equal(t, "submitted", submission["status"])
	assert.NotNil(t, submission["submittedAt"])

	// students cannot grade
	resp, _ = doRequest(t, "POST", "/api/grades", studentToken, map[string]interface{}{
		"submissionId": submissionID,
		"score":        90,
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, body = doRequest(t, "POST", "/api/grades", instructorToken, map[string]interface{}{
		"submissionId": submissionID,
		"score":        90,
		"gradedBy":     "instructor",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	grade := body["data"].(map[string]interface{})
	assert.Equal(t, float64(90), grade["score"])
	assert.Equal(t, "instructor", grade["gradedBy"])

	// grading moves the submission to graded
	resp, body = doRequest(t, "GET", "/api/submissions/"+submissionID, studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "graded", body["data"].(map[string]interface{})["status"])

	resp, body = doRequest(t, "GET", "/api/submissions/"+submissionID+"/grade", studentToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, submissionID, body["data"].(map[string]interface{})["submissionId"])

	resp, body = doRequest(t, "GET", "/api/courses/"+courseID+"/insights", instructorToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	insights := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), insights["submissions"])
	assert.Equal(t, float64(1), insights["gradedSubmissions"])
	assert.Equal(t, float64(90), insights["averageScore"])
}
