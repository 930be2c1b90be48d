package route

import (
	"github.com/gofiber/fiber/v2"

	"darulfatheh_backend/internals/features/home/dashboard/controller"
	helper "darulfatheh_backend/internals/helpers"
)

func DashboardAdminRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewDashboardController(deps.DB)
	r.Get("/", ctl.Index)
}
