package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "karate_coaching_backend/internals/helpers"
)

func ipLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.Error(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// GlobalRateLimiter membatasi seluruh API per IP.
func GlobalRateLimiter() fiber.Handler {
	return ipLimiter(120, 1*time.Minute,
		"Terlalu banyak permintaan, coba lagi sebentar lagi")
}

// LoginRateLimiter memperlambat brute-force kredensial.
func LoginRateLimiter() fiber.Handler {
	return ipLimiter(5, 1*time.Minute,
		"Terlalu banyak percobaan login, tunggu satu menit")
}

// RegisterRateLimiter — pendaftaran coach/student mengirim email
// berisi password, jadi dibatasi ketat.
func RegisterRateLimiter() fiber.Handler {
	return ipLimiter(3, 5*time.Minute,
		"Terlalu banyak pendaftaran dari alamat ini, tunggu beberapa menit")
}

// ForgotPasswordRateLimiter membatasi pengiriman kode reset 6 digit.
func ForgotPasswordRateLimiter() fiber.Handler {
	return ipLimiter(2, 10*time.Minute,
		"Terlalu banyak permintaan kode reset, coba lagi dalam 10 menit")
}
