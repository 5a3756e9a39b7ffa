package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/coaching/events/controller"
)

func EventRoutes(authed fiber.Router, db *gorm.DB) {
	ctl := controller.NewEventController(db)

	authed.Get("/", ctl.GetEvents)
	authed.Get("/types", ctl.GetEventTypes)
	authed.Post("/", ctl.CreateEvent)
	authed.Get("/:id", ctl.GetEvent)
	authed.Get("/:id/students", ctl.GetEventStudents)
	authed.Patch("/:id", ctl.UpdateEvent)
	authed.Delete("/:id", ctl.DeleteEvent)
	authed.Post("/:id/students/:student_id", ctl.RegisterStudent)
	authed.Delete("/:id/students/:student_id", ctl.UnregisterStudent)
}
