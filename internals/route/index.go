package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "karate_coaching_backend/internals/features/coaching/events/route"
	groupRoute "karate_coaching_backend/internals/features/coaching/groups/route"
	resultRoute "karate_coaching_backend/internals/features/coaching/results/route"
	studentRoute "karate_coaching_backend/internals/features/coaching/students/route"
	trainingRoute "karate_coaching_backend/internals/features/coaching/trainings/route"
	orgRoute "karate_coaching_backend/internals/features/organizations/route"
	paymentRoute "karate_coaching_backend/internals/features/payment/route"
	refRoute "karate_coaching_backend/internals/features/reference/route"
	authRoute "karate_coaching_backend/internals/features/users/auth/route"
	userRoute "karate_coaching_backend/internals/features/users/user/route"
	authMiddleware "karate_coaching_backend/internals/middlewares/auth"
)

// SetupRoutes menyusun seluruh route di bawah /api.
// Fiber memasang middleware group per PREFIX path, jadi JWT hanya
// dipasang pada prefix yang seluruh isinya protected. /api/auth dan
// /api/payments mencampur endpoint public + authed di satu prefix,
// di sana JWT dipasang per-route di dalam paketnya.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	api := app.Group("/api")
	jwt := authMiddleware.AuthMiddleware()

	authRoute.AuthRoutes(api.Group("/auth"), jwt, db)
	paymentRoute.PaymentRoutes(api.Group("/payments"), jwt, db)

	userRoute.UserRoutes(api.Group("/users", jwt), db)
	groupRoute.GroupRoutes(api.Group("/groups", jwt), db)
	eventRoute.EventRoutes(api.Group("/events", jwt), db)
	resultRoute.ResultRoutes(api.Group("/results", jwt), db)
	studentRoute.StudentRoutes(api.Group("/students", jwt), db)
	trainingRoute.TrainingRoutes(api.Group("/trainings", jwt), db)
	orgRoute.OrganizationRoutes(api.Group("/organizations", jwt), db)
	refRoute.ReferenceRoutes(api.Group("/reference", jwt), db)
}
