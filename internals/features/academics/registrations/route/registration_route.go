package route

import (
	"github.com/gofiber/fiber/v2"

	"darulfatheh_backend/internals/features/academics/registrations/controller"
	helper "darulfatheh_backend/internals/helpers"
	rateLimiter "darulfatheh_backend/internals/middlewares"
)

func RegistrationAdminRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewRegistrationController(deps)

	g := r.Group("/students")
	g.Get("/", ctl.List)
	g.Get("/:id/delete", ctl.Delete)
	g.Post("/:id/delete", ctl.Delete)
}

func RegistrationPublicRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewRegistrationController(deps)
	r.Get("/register", ctl.RegisterPage)
	r.Post("/register", rateLimiter.FormRateLimiter(deps.LimiterStorage), ctl.Register)
}
