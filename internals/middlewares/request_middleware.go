package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	helper "darulfatheh_backend/internals/helpers"
)

const RequestTimeout = 5 * time.Second

// RequestContext: Request-ID + timeout guard untuk query GORM (UserContext).
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals(helper.LocReqID, id)
		c.Locals(helper.LocPath, c.Path())

		ctx, cancel := context.WithTimeout(c.UserContext(), RequestTimeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
