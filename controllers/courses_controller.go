package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"checkmate/config"
	"checkmate/models"
	"checkmate/storage"
	"checkmate/utils"
	"checkmate/validation"
)

type CoursesController struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewCoursesController(store storage.Storage, cfg *config.Config) *CoursesController {
	return &CoursesController{Store: store, Cfg: cfg}
}

// CreateCourse creates a course owned by the calling instructor.
// Administrators may create on behalf of another instructor by sending
// an explicit instructorId.
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var in models.InsertCourse
	if err := c.BodyParser(&in); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if in.InstructorID == "" {
		in.InstructorID, _ = c.Locals("userID").(string)
	}

	if err := validation.Struct(in); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return utils.ValidationError(c, verr.Fields)
		}
		return utils.BadRequest(c, err.Error())
	}

	course, err := cc.Store.CreateCourse(in)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return utils.Conflict(c, "A course with this code already exists")
		}
		return utils.InternalServerError(c, "Could not create course")
	}

	return utils.Created(c, course)
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	course, err := cc.Store.GetCourse(c.Params("id"))
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}

	return utils.Success(c, fiber.StatusOK, course)
}

// GetTeachingCourses lists the courses the caller teaches.
func (cc *CoursesController) GetTeachingCourses(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	courses, err := cc.Store.GetCoursesByInstructor(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, courses)
}

// GetEnrolledCourses lists the courses the caller is enrolled in.
func (cc *CoursesController) GetEnrolledCourses(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	courses, err := cc.Store.GetEnrolledCourses(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, courses)
}

// UpdateCourse applies a partial update; fields omitted from the body
// are left unchanged.
func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	var updates models.CourseUpdate
	if err := c.BodyParser(&updates); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := cc.Store.UpdateCourse(c.Params("id"), updates)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return utils.Conflict(c, "A course with this code already exists")
		}
		return utils.InternalServerError(c, "Could not update course")
	}
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}

	return utils.Success(c, fiber.StatusOK, course)
}

// EnrollStudent enrolls a student in the course. Without an explicit
// studentId in the body, the caller enrolls themselves.
func (cc *CoursesController) EnrollStudent(c *fiber.Ctx) error {
	type EnrollInput struct {
		StudentID string `json:"studentId"`
	}

	var input EnrollInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return utils.BadRequest(c, "Cannot parse JSON")
		}
	}
	if input.StudentID == "" {
		input.StudentID, _ = c.Locals("userID").(string)
	}

	courseID := c.Params("id")
	course, err := cc.Store.GetCourse(courseID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}

	enrollment, err := cc.Store.EnrollStudent(courseID, input.StudentID)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return utils.Conflict(c, "Student is already enrolled in this course")
		}
		return utils.InternalServerError(c, "Could not enroll student")
	}

	return utils.Created(c, enrollment)
}

func (cc *CoursesController) GetEnrollments(c *fiber.Ctx) error {
	enrollments, err := cc.Store.GetEnrollments(c.Params("id"))
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, enrollments)
}

func (cc *CoursesController) GetAssignments(c *fiber.Ctx) error {
	assignments, err := cc.Store.GetAssignmentsByCourse(c.Params("id"))
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, assignments)
}
