package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"karate_coaching_backend/internals/features/payment/controller"
)

// PaymentRoutes — notification dari Midtrans masuk tanpa token
// (diverifikasi signature), sisanya di belakang JWT per-route.
func PaymentRoutes(r fiber.Router, jwt fiber.Handler, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	r.Post("/notification", ctl.HandleNotification)

	r.Post("/", jwt, ctl.CreatePayment)
	r.Get("/", jwt, ctl.GetMyPayments)
	r.Get("/student/:student_id", jwt, ctl.GetStudentPayments)
}
