package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	log "github.com/sirupsen/logrus"

	helper "darulfatheh_backend/internals/helpers"
	authMiddleware "darulfatheh_backend/internals/middlewares/auth"
)

const (
	viewNotFound = "errors/not-found"
	viewError    = "errors/error"
)

// ErrorHandler merender halaman error HTML. Error non-fiber dianggap 500
// dan dicatat lengkap; pesan aslinya tidak ditampilkan ke pengunjung.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	layout := helper.LayoutPublic
	if c.Locals(authMiddleware.LocCurrentAdmin) != nil {
		layout = helper.LayoutAdmin
	}

	var rerr error
	switch {
	case code == fiber.StatusNotFound:
		rerr = c.Status(code).Render(viewNotFound, fiber.Map{"Title": "Page Not Found"}, layout)
	case code >= fiber.StatusInternalServerError:
		log.WithFields(log.Fields{
			"reqid":  c.Locals(helper.LocReqID),
			"method": c.Method(),
			"path":   c.Path(),
		}).WithError(err).Error("❌ request failed")
		rerr = c.Status(code).Render(viewError, fiber.Map{
			"Title":        "Server Error",
			"ErrorCode":    code,
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "Something went wrong on our side. Please try again later.",
		}, layout)
	default:
		rerr = c.Status(code).Render(viewError, fiber.Map{
			"Title":        "Error",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		}, layout)
	}

	if rerr != nil {
		log.WithError(rerr).Warn("error page render failed")
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(utils.StatusMessage(code))
	}
	return nil
}
