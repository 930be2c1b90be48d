package details

import (
	"github.com/gofiber/fiber/v2"

	AlumniRoutes "darulfatheh_backend/internals/features/profiles/alumni/route"
	TeamRoutes "darulfatheh_backend/internals/features/profiles/team/route"
	TestimonialRoutes "darulfatheh_backend/internals/features/profiles/testimonials/route"
	helper "darulfatheh_backend/internals/helpers"
)

// Contoh akses: /our-team/, /alumni/
func ProfilePublicRoutes(api fiber.Router, deps *helper.Deps) {
	TeamRoutes.TeamPublicRoutes(api, deps)
	AlumniRoutes.AlumniPublicRoutes(api, deps)
}

// Contoh akses: /dashboard/team/, /dashboard/testimonials/, /dashboard/alumni-events/
func ProfileAdminRoutes(api fiber.Router, deps *helper.Deps) {
	TeamRoutes.TeamAdminRoutes(api, deps)
	TestimonialRoutes.TestimonialAdminRoutes(api, deps)
	AlumniRoutes.AlumniAdminRoutes(api, deps)
}
