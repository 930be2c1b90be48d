package details

import (
	"github.com/gofiber/fiber/v2"

	DonationRoutes "darulfatheh_backend/internals/features/finance/donations/route"
	helper "darulfatheh_backend/internals/helpers"
)

// Contoh akses: /donate/
func FinancePublicRoutes(api fiber.Router, deps *helper.Deps) {
	DonationRoutes.DonationPublicRoutes(api, deps)
}

// Contoh akses: /dashboard/donations/
func FinanceAdminRoutes(api fiber.Router, deps *helper.Deps) {
	DonationRoutes.DonationAdminRoutes(api, deps)
}
