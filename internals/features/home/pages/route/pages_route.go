package route

import (
	"github.com/gofiber/fiber/v2"

	"darulfatheh_backend/internals/features/home/pages/controller"
	helper "darulfatheh_backend/internals/helpers"
)

func PagesPublicRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewPagesController(deps.DB)
	r.Get("/", ctl.Index)
	r.Get("/about", ctl.About)
	r.Get("/not-found", ctl.NotFound)
}
