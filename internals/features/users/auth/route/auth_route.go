package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/users/auth/controller"
	"karate_coaching_backend/internals/middlewares"
)

// AuthRoutes memasang endpoint auth di /api/auth.
// Register/login/reset password public (rate-limited per endpoint);
// /me/* di belakang JWT yang dipasang per-route — prefix ini campuran
// public + authed, jadi middleware tidak dipasang di level group.
func AuthRoutes(r fiber.Router, jwt fiber.Handler, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	r.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	r.Post("/student/register/coach/:coach_id", middlewares.RegisterRateLimiter(), ctl.RegisterStudent)
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Post("/password/forgot", middlewares.ForgotPasswordRateLimiter(), ctl.ForgotPassword)
	r.Post("/password/reset", ctl.ResetPassword)

	r.Get("/me", jwt, ctl.Me)
	r.Get("/me/data", jwt, ctl.MeData)
	r.Get("/me/roles", jwt, ctl.MeRoles)
}
