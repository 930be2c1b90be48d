package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Nama layout template (lihat internals/views/templates/layouts).
const (
	LayoutPublic = "layouts/public"
	LayoutAdmin  = "layouts/admin"
	LayoutAuth   = "layouts/auth"
)

// Locals keys yang dibaca template lewat PassLocalsToViews.
const (
	LocFlash  = "Flash"
	LocNavbar = "NavCourses"
	LocReqID  = "reqid"
	LocPath   = "CurrentPath"
)

/* ===============================
   Render & redirect helpers
=================================*/

func RenderAdmin(c *fiber.Ctx, view string, data fiber.Map) error {
	return c.Render(view, data, LayoutAdmin)
}

func RenderPublic(c *fiber.Ctx, view string, data fiber.Map) error {
	return c.Render(view, data, LayoutPublic)
}

// RedirectSuccess set flash sukses lalu 302 ke target.
func RedirectSuccess(c *fiber.Ctx, to, message string) error {
	FlashSuccess(c, message)
	return c.Redirect(to, fiber.StatusFound)
}

// ParseUUIDParam: id rusak diperlakukan sama dengan record tidak ada (404).
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.ErrNotFound
	}
	return id, nil
}
