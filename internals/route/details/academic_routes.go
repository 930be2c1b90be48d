package details

import (
	"github.com/gofiber/fiber/v2"

	CourseRoutes "darulfatheh_backend/internals/features/academics/courses/route"
	RegistrationRoutes "darulfatheh_backend/internals/features/academics/registrations/route"
	helper "darulfatheh_backend/internals/helpers"
)

// Contoh akses: /courses/, /course_detail/:slug/, /register/
func AcademicPublicRoutes(api fiber.Router, deps *helper.Deps) {
	CourseRoutes.CoursePublicRoutes(api, deps)
	RegistrationRoutes.RegistrationPublicRoutes(api, deps)
}

// Contoh akses: /dashboard/courses/, /dashboard/students/
func AcademicAdminRoutes(api fiber.Router, deps *helper.Deps) {
	CourseRoutes.CourseAdminRoutes(api, deps)
	RegistrationRoutes.RegistrationAdminRoutes(api, deps)
}
