package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/coaching/trainings/controller"
)

func TrainingRoutes(authed fiber.Router, db *gorm.DB) {
	ctl := controller.NewTrainingController(db)

	authed.Get("/", ctl.GetTrainings)
	authed.Post("/", ctl.CreateTraining)
	authed.Get("/:id", ctl.GetTraining)
	authed.Patch("/:id", ctl.UpdateTraining)
	authed.Delete("/:id", ctl.DeleteTraining)
	authed.Post("/:id/attendance", ctl.UpsertAttendance)
	authed.Get("/:id/attendance", ctl.GetAttendance)
}
