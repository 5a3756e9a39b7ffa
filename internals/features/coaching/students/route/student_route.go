package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/coaching/students/controller"
)

func StudentRoutes(authed fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	authed.Get("/", ctl.GetStudents)
	authed.Post("/", ctl.AddStudent)
	authed.Get("/:id", ctl.GetStudent)
	authed.Get("/:id/results", ctl.GetStudentResults)
	authed.Get("/:id/events", ctl.GetStudentEvents)
	authed.Patch("/:id", ctl.UpdateStudent)
	authed.Delete("/:id", ctl.DeleteStudent)
}
