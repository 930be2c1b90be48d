package details

import (
	"github.com/gofiber/fiber/v2"

	GalleryRoutes "darulfatheh_backend/internals/features/publications/gallery/route"
	NewsRoutes "darulfatheh_backend/internals/features/publications/news/route"
	helper "darulfatheh_backend/internals/helpers"
)

// Contoh akses: /blog/, /news/:slug/, /gallery/?category=<id>
func PublicationPublicRoutes(api fiber.Router, deps *helper.Deps) {
	NewsRoutes.NewsPublicRoutes(api, deps)
	GalleryRoutes.GalleryPublicRoutes(api, deps)
}

// Contoh akses: /dashboard/news/, /dashboard/categories/, /dashboard/gallery/
func PublicationAdminRoutes(api fiber.Router, deps *helper.Deps) {
	NewsRoutes.NewsAdminRoutes(api, deps)
	GalleryRoutes.GalleryAdminRoutes(api, deps)
}
