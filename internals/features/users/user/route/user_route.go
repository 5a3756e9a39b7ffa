package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/users/user/controller"
)

// UserRoutes — semua di belakang JWT middleware.
func UserRoutes(authed fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	authed.Patch("/update/:user_id", ctl.UpdateUser)
	authed.Delete("/delete/:user_id", ctl.DeleteUser)
}
