package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModel "darulfatheh_backend/internals/features/academics/courses/model"
	registrationModel "darulfatheh_backend/internals/features/academics/registrations/model"
	donationModel "darulfatheh_backend/internals/features/finance/donations/model"
	contactModel "darulfatheh_backend/internals/features/inbox/contacts/model"
	alumniModel "darulfatheh_backend/internals/features/profiles/alumni/model"
	teamModel "darulfatheh_backend/internals/features/profiles/team/model"
	testimonialModel "darulfatheh_backend/internals/features/profiles/testimonials/model"
	galleryModel "darulfatheh_backend/internals/features/publications/gallery/model"
	newsModel "darulfatheh_backend/internals/features/publications/news/model"
	helper "darulfatheh_backend/internals/helpers"
)

const recentLimit = 5

// Stats ringkasan jumlah record di dashboard.
type Stats struct {
	TotalTeam         int64
	TotalCourses      int64
	TotalNews         int64
	TotalImages       int64
	TotalDonations    int64
	TotalMessages     int64
	UnreadMessages    int64
	TotalTestimonials int64
	TotalStudents     int64
	TotalAlumni       int64
}

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /dashboard/
func (dc *DashboardController) Index(c *fiber.Ctx) error {
	db := dc.DB.WithContext(c.UserContext())

	var st Stats
	counts := []struct {
		model any
		where string // satu placeholder bernilai false
		dst   *int64
	}{
		{&teamModel.ManagementTeamModel{}, "", &st.TotalTeam},
		{&courseModel.CourseModel{}, "", &st.TotalCourses},
		{&newsModel.NewsModel{}, "", &st.TotalNews},
		{&galleryModel.GalleryImageModel{}, "", &st.TotalImages},
		{&donationModel.DonationModel{}, "", &st.TotalDonations},
		{&contactModel.ContactMessageModel{}, "", &st.TotalMessages},
		{&contactModel.ContactMessageModel{}, "message_is_read = ?", &st.UnreadMessages},
		{&testimonialModel.TestimonialModel{}, "", &st.TotalTestimonials},
		{&registrationModel.StudentRegistrationModel{}, "", &st.TotalStudents},
		{&alumniModel.AlumniProfileModel{}, "", &st.TotalAlumni},
	}
	for _, q := range counts {
		tx := db.Model(q.model)
		if q.where != "" {
			tx = tx.Where(q.where, false)
		}
		if err := tx.Count(q.dst).Error; err != nil {
			return helper.FromDBError(err, "dashboard counts")
		}
	}

	var messages []contactModel.ContactMessageModel
	if err := db.Order("message_created_at DESC").Limit(recentLimit).Find(&messages).Error; err != nil {
		return helper.FromDBError(err, "recent messages")
	}
	var donations []donationModel.DonationModel
	if err := db.Order("donation_donated_at DESC").Limit(recentLimit).Find(&donations).Error; err != nil {
		return helper.FromDBError(err, "recent donations")
	}

	return helper.RenderAdmin(c, "admin/dashboard", fiber.Map{
		"Title":           "Dashboard",
		"Active":          "dashboard",
		"Stats":           st,
		"RecentMessages":  messages,
		"RecentDonations": donations,
	})
}
