package route

import (
	"github.com/gofiber/fiber/v2"

	"darulfatheh_backend/internals/features/profiles/team/controller"
	helper "darulfatheh_backend/internals/helpers"
)

/*
Admin routes (group /dashboard, sudah RequireAdmin):

	GET      /team/
	GET|POST /team/create/
	GET|POST /team/:id/edit/
	GET|POST /team/:id/delete/
*/
func TeamAdminRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewTeamController(deps)

	team := r.Group("/team")
	team.Get("/", ctl.List)
	team.Get("/create", ctl.CreatePage)
	team.Post("/create", ctl.Create)
	team.Get("/:id/edit", ctl.EditPage)
	team.Post("/:id/edit", ctl.Update)
	team.Get("/:id/delete", ctl.Delete)
	team.Post("/:id/delete", ctl.Delete)
}

func TeamPublicRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewTeamController(deps)
	r.Get("/our-team", ctl.PublicList)
}
