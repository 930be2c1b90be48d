package route

import (
	"github.com/gofiber/fiber/v2"

	"darulfatheh_backend/internals/features/profiles/testimonials/controller"
	helper "darulfatheh_backend/internals/helpers"
)

func TestimonialAdminRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewTestimonialController(deps)

	g := r.Group("/testimonials")
	g.Get("/", ctl.List)
	g.Get("/create", ctl.CreatePage)
	g.Post("/create", ctl.Create)
	g.Get("/:id/edit", ctl.EditPage)
	g.Post("/:id/edit", ctl.Update)
	g.Get("/:id/delete", ctl.Delete)
	g.Post("/:id/delete", ctl.Delete)
}
