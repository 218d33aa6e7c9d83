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

type GradesController struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewGradesController(store storage.Storage, cfg *config.Config) *GradesController {
	return &GradesController{Store: store, Cfg: cfg}
}

// CreateGrade attaches a grade to a submission and moves the submission
// to "graded". The two writes are independent statements; the status
// update follows the grade insert.
func (gc *GradesController) CreateGrade(c *fiber.Ctx) error {
	var in models.InsertGrade
	if err := c.BodyParser(&in); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := validation.Struct(in); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return utils.ValidationError(c, verr.Fields)
		}
		return utils.BadRequest(c, err.Error())
	}

	submission, err := gc.Store.GetSubmission(in.SubmissionID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if submission == nil {
		return utils.NotFound(c, "Submission not found")
	}

	grade, err := gc.Store.CreateGrade(in)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return utils.Conflict(c, "Grade conflicts with existing data")
		}
		return utils.InternalServerError(c, "Could not create grade")
	}

	graded := models.SubmissionGraded
	if _, err := gc.Store.UpdateSubmission(in.SubmissionID, models.SubmissionUpdate{Status: &graded}); err != nil {
		return utils.InternalServerError(c, "Could not update submission status")
	}

	return utils.Created(c, grade)
}
