package route

import (
	"github.com/gofiber/fiber/v2"

	"darulfatheh_backend/internals/features/inbox/contacts/controller"
	helper "darulfatheh_backend/internals/helpers"
	rateLimiter "darulfatheh_backend/internals/middlewares"
)

func ContactAdminRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewContactController(deps.DB)

	g := r.Group("/messages")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.View)
	g.Get("/:id/delete", ctl.Delete)
	g.Post("/:id/delete", ctl.Delete)
}

func ContactPublicRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewContactController(deps.DB)
	r.Get("/contact", ctl.ContactPage)
	r.Post("/contact", rateLimiter.FormRateLimiter(deps.LimiterStorage), ctl.Submit)
}
