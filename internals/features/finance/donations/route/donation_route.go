package route

import (
	"github.com/gofiber/fiber/v2"

	"darulfatheh_backend/internals/features/finance/donations/controller"
	helper "darulfatheh_backend/internals/helpers"
	rateLimiter "darulfatheh_backend/internals/middlewares"
)

func DonationAdminRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewDonationController(deps)

	g := r.Group("/donations")
	g.Get("/", ctl.List)
	g.Get("/create", ctl.CreatePage)
	g.Post("/create", ctl.Create)
	g.Get("/:id/edit", ctl.EditPage)
	g.Post("/:id/edit", ctl.Update)
	g.Get("/:id/delete", ctl.Delete)
	g.Post("/:id/delete", ctl.Delete)
}

func DonationPublicRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewDonationController(deps)
	r.Get("/donate", ctl.DonatePage)
	r.Post("/donate", rateLimiter.FormRateLimiter(deps.LimiterStorage), ctl.Donate)
}
