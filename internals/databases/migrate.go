package database

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
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
	authModel "darulfatheh_backend/internals/features/users/auth/model"
)

// Models urutan migrasi: parent sebelum child (FK).
func Models() []any {
	return []any{
		&authModel.AdminUserModel{},
		&teamModel.ManagementTeamModel{},
		&courseModel.CourseModel{},
		&registrationModel.StudentRegistrationModel{},
		&newsModel.NewsModel{},
		&galleryModel.CategoryModel{},
		&galleryModel.GalleryImageModel{},
		&donationModel.DonationModel{},
		&contactModel.ContactMessageModel{},
		&testimonialModel.TestimonialModel{},
		&alumniModel.AlumniProfileModel{},
		&alumniModel.AlumniEventModel{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	log.Info("✅ Schema migrated.")
	return nil
}
