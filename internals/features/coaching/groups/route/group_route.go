package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/coaching/groups/controller"
)

func GroupRoutes(authed fiber.Router, db *gorm.DB) {
	ctl := controller.NewGroupController(db)

	authed.Get("/", ctl.GetGroups)
	authed.Post("/", ctl.CreateGroup)
	authed.Get("/:id", ctl.GetGroup)
	authed.Get("/:id/students", ctl.GetGroupStudents)
	authed.Patch("/:id", ctl.UpdateGroup)
	authed.Delete("/:id", ctl.DeleteGroup)
	authed.Post("/:id/students/:student_id", ctl.AddStudentToGroup)
	authed.Delete("/:id/students/:student_id", ctl.RemoveStudentFromGroup)
}
