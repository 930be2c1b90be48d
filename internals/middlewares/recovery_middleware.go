package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

// RecoveryMiddleware menangkap panic; ErrorHandler yang merender halaman 500.
func RecoveryMiddleware(debug bool) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: debug,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.WithFields(log.Fields{
				"path":  c.Path(),
				"reqid": c.Locals("reqid"),
				"panic": e,
			}).Error("💥 panic recovered")
		},
	})
}
