package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func newLimiter(max int, window time.Duration, storage fiber.Storage, msg string) fiber.Handler {
	cfg := limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|" + c.Path()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, msg)
		},
	}
	if storage != nil {
		cfg.Storage = storage
	}
	return limiter.New(cfg)
}

// Rate limiter untuk login dashboard (lebih ketat)
func LoginRateLimiter(storage fiber.Storage) fiber.Handler {
	return newLimiter(5, 1*time.Minute, storage,
		"Too many login attempts. Please try again in a minute.")
}

// Rate limiter untuk form publik (contact, donate, register)
func FormRateLimiter(storage fiber.Storage) fiber.Handler {
	return newLimiter(10, 5*time.Minute, storage,
		"Too many submissions. Please wait a few minutes and try again.")
}
