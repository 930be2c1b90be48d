package route

import (
	"github.com/gofiber/fiber/v2"

	"darulfatheh_backend/internals/features/profiles/alumni/controller"
	helper "darulfatheh_backend/internals/helpers"
)

func AlumniAdminRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewAlumniController(deps)

	profiles := r.Group("/alumni")
	profiles.Get("/", ctl.ListProfiles)
	profiles.Get("/create", ctl.CreateProfilePage)
	profiles.Post("/create", ctl.CreateProfile)
	profiles.Get("/:id/edit", ctl.EditProfilePage)
	profiles.Post("/:id/edit", ctl.UpdateProfile)
	profiles.Get("/:id/delete", ctl.DeleteProfile)
	profiles.Post("/:id/delete", ctl.DeleteProfile)

	events := r.Group("/alumni-events")
	events.Get("/", ctl.ListEvents)
	events.Get("/create", ctl.CreateEventPage)
	events.Post("/create", ctl.CreateEvent)
	events.Get("/:id/edit", ctl.EditEventPage)
	events.Post("/:id/edit", ctl.UpdateEvent)
	events.Get("/:id/delete", ctl.DeleteEvent)
	events.Post("/:id/delete", ctl.DeleteEvent)
}

func AlumniPublicRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewAlumniController(deps)
	r.Get("/alumni", ctl.PublicPage)
}
