package details

import (
	"github.com/gofiber/fiber/v2"

	DashboardRoutes "darulfatheh_backend/internals/features/home/dashboard/route"
	PagesRoutes "darulfatheh_backend/internals/features/home/pages/route"
	helper "darulfatheh_backend/internals/helpers"
)

// ✅ Halaman publik statis-ish
// Contoh akses: /, /about/
func HomePublicRoutes(api fiber.Router, deps *helper.Deps) {
	PagesRoutes.PagesPublicRoutes(api, deps)
}

// ✅ Ringkasan dashboard
// Contoh akses: /dashboard/
func HomeAdminRoutes(api fiber.Router, deps *helper.Deps) {
	DashboardRoutes.DashboardAdminRoutes(api, deps)
}
