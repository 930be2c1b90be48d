package controller

import (
	"github.com/gofiber/fiber/v2"

	"darulfatheh_backend/internals/features/academics/courses/model"
	helper "darulfatheh_backend/internals/helpers"
)

// GET /courses/ : course aktif, 8 per halaman
func (cc *CourseController) PublicList(c *fiber.Ctx) error {
	page, err := helper.PaginateQuery[model.CourseModel](
		c.UserContext(),
		cc.DB.Model(&model.CourseModel{}).Where("course_is_active = ?", true),
		CourseOrder, helper.PerPagePublicCourse, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list courses")
	}
	return helper.RenderPublic(c, "public/courses", fiber.Map{
		"Title": "Courses",
		"Page":  page,
	})
}

// GET /course_detail/:slug/
func (cc *CourseController) PublicDetail(c *fiber.Ctx) error {
	course, err := helper.FindOr404[model.CourseModel](c, cc.DB, "course_slug", c.Params("slug"))
	if err != nil {
		return err
	}
	others, err := ActiveCourses(c.UserContext(), cc.DB, 0, &course.CourseID)
	if err != nil {
		return helper.FromDBError(err, "list courses")
	}
	return helper.RenderPublic(c, "public/course-detail", fiber.Map{
		"Title":      course.CourseTitle,
		"Course":     course,
		"AllCourses": others,
	})
}
