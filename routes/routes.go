package routes

import (
	"github.com/gofiber/fiber/v2"

	"checkmate/config"
	"checkmate/controllers"
	"checkmate/middleware"
	"checkmate/storage"
)

func SetupRoutes(app *fiber.App, store storage.Storage, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(store, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	instructorMiddleware := middleware.InstructorMiddleware(store)

	app.Get("/api/auth/me", authMiddleware, authController.Me)

	// Course routes
	coursesController := controllers.NewCoursesController(store, cfg)
	insightsController := controllers.NewInsightsController(store, cfg)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Post("/", instructorMiddleware, coursesController.CreateCourse)
	courses.Get("/teaching", coursesController.GetTeachingCourses)
	courses.Get("/enrolled", coursesController.GetEnrolledCourses)
	courses.Get("/:id", coursesController.GetCourse)
	courses.Patch("/:id", instructorMiddleware, coursesController.UpdateCourse)
	courses.Post("/:id/enroll", coursesController.EnrollStudent)
	courses.Get("/:id/enrollments", instructorMiddleware, coursesController.GetEnrollments)
	courses.Get("/:id/assignments", coursesController.GetAssignments)
	courses.Get("/:id/insights", instructorMiddleware, insightsController.GetCourseInsights)

	// Assignment routes
	assignmentsController := controllers.NewAssignmentsController(store, cfg)
	assignments := app.Group("/api/assignments", authMiddleware)
	assignments.Post("/", instructorMiddleware, assignmentsController.CreateAssignment)
	assignments.Get("/:id", assignmentsController.GetAssignment)
	assignments.Patch("/:id", instructorMiddleware, assignmentsController.UpdateAssignment)
	assignments.Get("/:id/submissions", instructorMiddleware, assignmentsController.GetSubmissions)

	// Submission routes
	submissionsController := controllers.NewSubmissionsController(store, cfg)
	submissions := app.Group("/api/submissions", authMiddleware)
	submissions.Post("/", submissionsController.CreateSubmission)
	submissions.Get("/mine", submissionsController.GetMySubmissions)
	submissions.Get("/:id", submissionsController.GetSubmission)
	submissions.Patch("/:id", submissionsController.UpdateSubmission)
	submissions.Get("/:id/grade", submissionsController.GetGrade)

	// Grade routes
	gradesController := controllers.NewGradesController(store, cfg)
	app.Post("/api/grades", authMiddleware, instructorMiddleware, gradesController.CreateGrade)
}
