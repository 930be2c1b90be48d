package details

import (
	"github.com/gofiber/fiber/v2"

	ContactRoutes "darulfatheh_backend/internals/features/inbox/contacts/route"
	helper "darulfatheh_backend/internals/helpers"
)

// Contoh akses: /contact/
func InboxPublicRoutes(api fiber.Router, deps *helper.Deps) {
	ContactRoutes.ContactPublicRoutes(api, deps)
}

// Contoh akses: /dashboard/messages/
func InboxAdminRoutes(api fiber.Router, deps *helper.Deps) {
	ContactRoutes.ContactAdminRoutes(api, deps)
}
