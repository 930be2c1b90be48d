package details

import (
	"github.com/gofiber/fiber/v2"

	AuthRoute "darulfatheh_backend/internals/features/users/auth/route"
	helper "darulfatheh_backend/internals/helpers"
)

// ✅ Login / logout dashboard, dipasang sebelum grup admin
// Contoh akses: /dashboard/login/
func AuthRoutes(app fiber.Router, deps *helper.Deps) {
	AuthRoute.AuthRoutes(app, deps)
}
