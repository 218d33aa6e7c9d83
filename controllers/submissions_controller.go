package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"checkmate/config"
	"checkmate/models"
	"checkmate/storage"
	"checkmate/utils"
	"checkmate/validation"
)

type SubmissionsController struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewSubmissionsController(store storage.Storage, cfg *config.Config) *SubmissionsController {
	return &SubmissionsController{Store: store, Cfg: cfg}
}

// CreateSubmission starts a draft submission for the calling student.
func (sc *SubmissionsController) CreateSubmission(c *fiber.Ctx) error {
	var in models.InsertSubmission
	if err := c.BodyParser(&in); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if in.StudentID == "" {
		in.StudentID, _ = c.Locals("userID").(string)
	}

	if err := validation.Struct(in); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return utils.ValidationError(c, verr.Fields)
		}
		return utils.BadRequest(c, err.Error())
	}

	assignment, err := sc.Store.GetAssignment(in.AssignmentID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if assignment == nil {
		return utils.NotFound(c, "Assignment not found")
	}

	submission, err := sc.Store.CreateSubmission(in)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return utils.Conflict(c, "Submission conflicts with existing data")
		}
		return utils.InternalServerError(c, "Could not create submission")
	}

	return utils.Created(c, submission)
}

func (sc *SubmissionsController) GetSubmission(c *fiber.Ctx) error {
	submission, err := sc.Store.GetSubmission(c.Params("id"))
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if submission == nil {
		return utils.NotFound(c, "Submission not found")
	}

	return utils.Success(c, fiber.StatusOK, submission)
}

// GetMySubmissions lists the caller's submissions across assignments.
func (sc *SubmissionsController) GetMySubmissions(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	submissions, err := sc.Store.GetSubmissionsByStudent(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, submissions)
}

// UpdateSubmission applies a partial update. Moving the status to
// "submitted" stamps submittedAt when the caller did not provide one.
func (sc *SubmissionsController) UpdateSubmission(c *fiber.Ctx) error {
	var updates models.SubmissionUpdate
	if err := c.BodyParser(&updates); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if updates.Status != nil && *updates.Status == models.SubmissionSubmitted && updates.SubmittedAt == nil {
		now := time.Now().UTC()
		updates.SubmittedAt = &now
	}

	submission, err := sc.Store.UpdateSubmission(c.Params("id"), updates)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidValue) {
			return utils.BadRequest(c, "Invalid submission status")
		}
		return utils.InternalServerError(c, "Could not update submission")
	}
	if submission == nil {
		return utils.NotFound(c, "Submission not found")
	}

	return utils.Success(c, fiber.StatusOK, submission)
}

// GetGrade returns the grade attached to the submission, if any.
func (sc *SubmissionsController) GetGrade(c *fiber.Ctx) error {
	grade, err := sc.Store.GetGradeBySubmission(c.Params("id"))
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if grade == nil {
		return utils.NotFound(c, "Grade not found")
	}

	return utils.Success(c, fiber.StatusOK, grade)
}
