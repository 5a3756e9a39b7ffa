package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/reference/controller"
)

func ReferenceRoutes(authed fiber.Router, db *gorm.DB) {
	ctl := controller.NewReferenceController(db)

	authed.Get("/genders", ctl.GetGenders)
	authed.Get("/sport-types", ctl.GetSportTypes)
	authed.Get("/age-categories", ctl.GetAgeCategories)
	authed.Get("/weight-categories", ctl.GetWeightCategories)
	authed.Get("/sport-levels", ctl.GetSportLevels)
	authed.Get("/attendance-statuses", ctl.GetAttendanceStatuses)
}
