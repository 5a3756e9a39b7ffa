package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/coaching/results/controller"
)

func ResultRoutes(authed fiber.Router, db *gorm.DB) {
	ctl := controller.NewResultController(db)

	authed.Get("/", ctl.GetResults)
	authed.Get("/places", ctl.GetPlaces)
	authed.Post("/", ctl.CreateResult)
	authed.Delete("/comments/:comment_id", ctl.DeleteResultComment)
	authed.Get("/:id", ctl.GetResult)
	authed.Patch("/:id", ctl.UpdateResult)
	authed.Delete("/:id", ctl.DeleteResult)
	authed.Get("/:id/comments", ctl.GetResultComments)
	authed.Post("/:id/comments", ctl.CreateResultComment)
}
