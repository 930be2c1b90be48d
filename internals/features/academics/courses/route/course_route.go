package route

import (
	"github.com/gofiber/fiber/v2"

	"darulfatheh_backend/internals/features/academics/courses/controller"
	helper "darulfatheh_backend/internals/helpers"
)

func CourseAdminRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewCourseController(deps)

	g := r.Group("/courses")
	g.Get("/", ctl.List)
	g.Get("/create", ctl.CreatePage)
	g.Post("/create", ctl.Create)
	g.Get("/:id/edit", ctl.EditPage)
	g.Post("/:id/edit", ctl.Update)
	g.Get("/:id/delete", ctl.Delete)
	g.Post("/:id/delete", ctl.Delete)
}

func CoursePublicRoutes(r fiber.Router, deps *helper.Deps) {
	ctl := controller.NewCourseController(deps)
	r.Get("/courses", ctl.PublicList)
	r.Get("/course_detail/:slug", ctl.PublicDetail)
}
