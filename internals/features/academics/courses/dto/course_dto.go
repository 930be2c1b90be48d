package dto

import (
	"strings"
	"time"

	"darulfatheh_backend/internals/features/academics/courses/model"
	helper "darulfatheh_backend/internals/helpers"
)

type CourseRequest struct {
	Title            string `form:"title" validate:"required,max=200"`
	Slug             string `form:"slug" validate:"max=255"`
	ShortDescription string `form:"short_description"`
	Description      string `form:"description" validate:"required"`
	Level            string `form:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration         string `form:"duration" validate:"required,max=100"`
	Instructor       string `form:"instructor" validate:"max=200"`
	StartDate        string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive         bool   `form:"-"`
}

// ApplyTo menyalin field form; slug & thumbnail diurus controller.
func (r *CourseRequest) ApplyTo(m *model.CourseModel) {
	m.CourseTitle = strings.TrimSpace(r.Title)
	m.CourseShortDescription = strings.TrimSpace(r.ShortDescription)
	m.CourseDescription = strings.TrimSpace(r.Description)
	m.CourseLevel = r.Level
	if m.CourseLevel == "" {
		m.CourseLevel = model.LevelBeginner
	}
	m.CourseDuration = strings.TrimSpace(r.Duration)
	m.CourseInstructor = strings.TrimSpace(r.Instructor)
	m.CourseIsActive = r.IsActive
	m.CourseStartDate = nil
	if d, err := time.Parse(helper.DateLayout, strings.TrimSpace(r.StartDate)); err == nil {
		m.CourseStartDate = &d
	}
}
