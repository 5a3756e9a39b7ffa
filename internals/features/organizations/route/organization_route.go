package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/organizations/controller"
)

func OrganizationRoutes(authed fiber.Router, db *gorm.DB) {
	ctl := controller.NewOrganizationController(db)

	authed.Get("/", ctl.GetOrganizations)
	authed.Post("/", ctl.CreateOrganization)
	authed.Get("/:id", ctl.GetOrganization)
	authed.Patch("/:id", ctl.UpdateOrganization)
	authed.Delete("/:id", ctl.DeleteOrganization)
}
