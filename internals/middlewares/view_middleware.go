package middlewares

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	courseModel "darulfatheh_backend/internals/features/academics/courses/model"
	helper "darulfatheh_backend/internals/helpers"
)

// NavCourse item dropdown "Courses" di navbar publik.
type NavCourse struct {
	Title string
	Slug  string
}

// NavbarMiddleware mengisi daftar course aktif untuk navbar semua halaman publik.
func NavbarMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []NavCourse
		err := db.WithContext(c.UserContext()).
			Model(&courseModel.CourseModel{}).
			Select("course_title AS title, course_slug AS slug").
			Where("course_is_active = ?", true).
			Order("course_title ASC").
			Scan(&items).Error
		if err != nil {
			log.WithError(err).Warn("load navbar courses")
		}
		c.Locals(helper.LocNavbar, items)
		return c.Next()
	}
}

// FlashMiddleware memindahkan flash cookie ke Locals (sekali tampil).
func FlashMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if f := helper.PopFlash(c); f != nil {
			c.Locals(helper.LocFlash, f)
		}
		return c.Next()
	}
}
