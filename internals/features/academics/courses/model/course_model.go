package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// CourseLevels urutan pilihan level di form.
var CourseLevels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced}

type CourseModel struct {
	CourseID               uuid.UUID  `gorm:"column:course_id;type:uuid;primaryKey" json:"course_id"`
	CourseTitle            string     `gorm:"column:course_title;type:varchar(200);not null" json:"course_title"`
	CourseSlug             string     `gorm:"column:course_slug;type:varchar(255);not null;uniqueIndex:uq_courses_slug" json:"course_slug"`
	CourseShortDescription string     `gorm:"column:course_short_description;type:text" json:"course_short_description"`
	CourseDescription      string     `gorm:"column:course_description;type:text;not null" json:"course_description"`
	CourseLevel            string     `gorm:"column:course_level;type:varchar(20);not null" json:"course_level"`
	CourseDuration         string     `gorm:"column:course_duration;type:varchar(100);not null" json:"course_duration"`
	CourseInstructor       string     `gorm:"column:course_instructor;type:varchar(200)" json:"course_instructor"`
	CourseThumbnail        string     `gorm:"column:course_thumbnail;type:varchar(255)" json:"course_thumbnail"`
	CourseIsActive         bool       `gorm:"column:course_is_active;not null" json:"course_is_active"`
	CourseStartDate        *time.Time `gorm:"column:course_start_date;type:date" json:"course_start_date"`
	CourseCreatedAt        time.Time  `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	if m.CourseLevel == "" {
		m.CourseLevel = LevelBeginner
	}
	return nil
}
