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

type AssignmentsController struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewAssignmentsController(store storage.Storage, cfg *config.Config) *AssignmentsController {
	return &AssignmentsController{Store: store, Cfg: cfg}
}

func (ac *AssignmentsController) CreateAssignment(c *fiber.Ctx) error {
	var in models.InsertAssignment
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

	course, err := ac.Store.GetCourse(in.CourseID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}

	assignment, err := ac.Store.CreateAssignment(in)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return utils.Conflict(c, "Assignment conflicts with existing data")
		}
		return utils.InternalServerError(c, "Could not create assignment")
	}

	return utils.Created(c, assignment)
}

func (ac *AssignmentsController) GetAssignment(c *fiber.Ctx) error {
	assignment, err := ac.Store.GetAssignment(c.Params("id"))
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if assignment == nil {
		return utils.NotFound(c, "Assignment not found")
	}

	return utils.Success(c, fiber.StatusOK, assignment)
}

func (ac *AssignmentsController) UpdateAssignment(c *fiber.Ctx) error {
	var updates models.AssignmentUpdate
	if err := c.BodyParser(&updates); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	assignment, err := ac.Store.UpdateAssignment(c.Params("id"), updates)
	if err != nil {
		return utils.InternalServerError(c, "Could not update assignment")
	}
	if assignment == nil {
		return utils.NotFound(c, "Assignment not found")
	}

	return utils.Success(c, fiber.StatusOK, assignment)
}

func (ac *AssignmentsController) GetSubmissions(c *fiber.Ctx) error {
	submissions, err := ac.Store.GetSubmissionsByAssignment(c.Params("id"))
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, submissions)
}
