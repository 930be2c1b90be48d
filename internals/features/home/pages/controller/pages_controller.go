package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "darulfatheh_backend/internals/features/academics/courses/controller"
	courseModel "darulfatheh_backend/internals/features/academics/courses/model"
	teamController "darulfatheh_backend/internals/features/profiles/team/controller"
	teamModel "darulfatheh_backend/internals/features/profiles/team/model"
	testimonialController "darulfatheh_backend/internals/features/profiles/testimonials/controller"
	newsController "darulfatheh_backend/internals/features/publications/news/controller"
	galleryModel "darulfatheh_backend/internals/features/publications/gallery/model"
	helper "darulfatheh_backend/internals/helpers"
)

const (
	homeCourseLimit  = 4
	homeNewsLimit    = 3
	homeGalleryLimit = 8
)

type PagesController struct {
	DB *gorm.DB
}

func NewPagesController(db *gorm.DB) *PagesController {
	return &PagesController{DB: db}
}

// GET /
func (pc *PagesController) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()
	db := pc.DB.WithContext(ctx)

	courses, err := courseController.ActiveCourses(ctx, pc.DB, homeCourseLimit, nil)
	if err != nil {
		return helper.FromDBError(err, "home courses")
	}
	news, err := newsController.PublishedNews(ctx, pc.DB, homeNewsLimit, "")
	if err != nil {
		return helper.FromDBError(err, "home news")
	}
	testimonials, err := testimonialController.ApprovedTestimonials(ctx, pc.DB)
	if err != nil {
		return helper.FromDBError(err, "home testimonials")
	}

	var images []galleryModel.GalleryImageModel
	if err := db.Order("image_uploaded_at DESC").Limit(homeGalleryLimit).Find(&images).Error; err != nil {
		return helper.FromDBError(err, "home gallery")
	}

	var totalCourses, totalTeam int64
	if err := db.Model(&courseModel.CourseModel{}).Where("course_is_active = ?", true).Count(&totalCourses).Error; err != nil {
		return helper.FromDBError(err, "count courses")
	}
	if err := db.Model(&teamModel.ManagementTeamModel{}).Count(&totalTeam).Error; err != nil {
		return helper.FromDBError(err, "count team")
	}

	return helper.RenderPublic(c, "public/index", fiber.Map{
		"Title":         "Home",
		"Courses":       courses,
		"News":          news,
		"Testimonials":  testimonials,
		"GalleryImages": images,
		"TotalCourses":  totalCourses,
		"TotalTeam":     totalTeam,
	})
}

// GET /about/
func (pc *PagesController) About(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var team []teamModel.ManagementTeamModel
	if err := helper.ApplyOrder(pc.DB.WithContext(ctx), teamController.TeamOrder).Find(&team).Error; err != nil {
		return helper.FromDBError(err, "about team")
	}
	testimonials, err := testimonialController.ApprovedTestimonials(ctx, pc.DB)
	if err != nil {
		return helper.FromDBError(err, "about testimonials")
	}
	return helper.RenderPublic(c, "public/about", fiber.Map{
		"Title":        "About Us",
		"Team":         team,
		"Testimonials": testimonials,
	})
}

// GET /not-found/ dirender dengan status 200, route tak dikenal → 404.
func (pc *PagesController) NotFound(c *fiber.Ctx) error {
	return helper.RenderPublic(c, "errors/not-found", fiber.Map{"Title": "Page Not Found"})
}
