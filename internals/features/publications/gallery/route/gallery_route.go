package route

import (
	"github.com/gofiber/fiber/v2"

	"darulfatheh_backend/internals/features/publications/gallery/controller"
	helper "darulfatheh_backend/internals/helpers"
)

func GalleryAdminRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewGalleryController(deps)

	categories := r.Group("/categories")
	categories.Get("/", ctl.ListCategories)
	categories.Get("/create", ctl.CreateCategoryPage)
	categories.Post("/create", ctl.CreateCategory)
	categories.Get("/:id/edit", ctl.UpdateCategory)
	categories.Post("/:id/edit", ctl.UpdateCategory)
	categories.Get("/:id/delete", ctl.DeleteCategory)
	categories.Post("/:id/delete", ctl.DeleteCategory)

	gallery := r.Group("/gallery")
	gallery.Get("/", ctl.ListImages)
	gallery.Get("/create", ctl.UploadPage)
	gallery.Post("/create", ctl.Upload)
	gallery.Get("/:id/delete", ctl.DeleteImage)
	gallery.Post("/:id/delete", ctl.DeleteImage)
}

func GalleryPublicRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewGalleryController(deps)
	r.Get("/gallery", ctl.PublicGallery)
}
