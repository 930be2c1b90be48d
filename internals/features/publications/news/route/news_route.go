package route

import (
	"github.com/gofiber/fiber/v2"

	"darulfatheh_backend/internals/features/publications/news/controller"
	helper "darulfatheh_backend/internals/helpers"
)

func NewsAdminRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewNewsController(deps)

	g := r.Group("/news")
	g.Get("/", ctl.List)
	g.Get("/create", ctl.CreatePage)
	g.Post("/create", ctl.Create)
	g.Get("/:id/edit", ctl.EditPage)
	g.Post("/:id/edit", ctl.Update)
	g.Get("/:id/delete", ctl.Delete)
	g.Post("/:id/delete", ctl.Delete)
}

func NewsPublicRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewNewsController(deps)
	r.Get("/blog", ctl.Blog)
	r.Post("/blog", ctl.Blog)
	r.Get("/news/:slug", ctl.Detail)
}
