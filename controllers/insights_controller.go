package controllers

import (
	"github.com/gofiber/fiber/v2"

	"checkmate/config"
	"checkmate/models"
	"checkmate/storage"
	"checkmate/utils"
)

type InsightsController struct {
	Store storage.Storage
	Cfg   *config.Config
}

func NewInsightsController(store storage.Storage, cfg *config.Config) *InsightsController {
	return &InsightsController{Store: store, Cfg: cfg}
}

// Static AI summaries. Real feedback and plagiarism pipelines live
// outside this service; the dashboard consumes these fixtures.
var aiInsightFixtures = []fiber.Map{
	{
		"type":    "feedback",
		"summary": "Most submissions show a solid grasp of the core concepts; common weak spots are citation format and conclusion depth.",
	},
	{
		"type":    "plagiarism",
		"summary": "No high-similarity clusters detected in recent submissions.",
	},
}

// GetCourseInsights summarizes grading activity for a course: counts of
// submissions by status, average score across graded work, and the AI
// fixture summaries.
func (ic *InsightsController) GetCourseInsights(c *fiber.Ctx) error {
	courseID := c.Params("id")

	course, err := ic.Store.GetCourse(courseID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if course == nil {
		return utils.NotFound(c, "Course not found")
	}

	assignments, err := ic.Store.GetAssignmentsByCourse(courseID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var total, graded, pending int
	var scoreSum, scoreCount int
	for _, assignment := range assignments {
		submissions, err := ic.Store.GetSubmissionsByAssignment(assignment.ID)
		if err != nil {
			return utils.InternalServerError(c, "Could not query database")
		}

		for _, submission := range submissions {
			total++
			switch submission.Status {
			case models.SubmissionGraded:
				graded++
			case models.SubmissionSubmitted:
				pending++
			}

			grade, err := ic.Store.GetGradeBySubmission(submission.ID)
			if err != nil {
				return utils.InternalServerError(c, "Could not query database")
			}
			if grade != nil && grade.Score != nil {
				scoreSum += *grade.Score
				scoreCount++
			}
		}
	}

	var averageScore float64
	if scoreCount > 0 {
		averageScore = float64(scoreSum) / float64(scoreCount)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"courseId":          course.ID,
		"assignments":       len(assignments),
		"submissions":       total,
		"gradedSubmissions": graded,
		"pendingReview":     pending,
		"averageScore":      averageScore,
		"aiInsights":        aiInsightFixtures,
	})
}
