package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultTestimonialRating = 5

type TestimonialModel struct {
	TestimonialID          uuid.UUID `gorm:"column:testimonial_id;type:uuid;primaryKey" json:"testimonial_id"`
	TestimonialName        string    `gorm:"column:testimonial_name;type:varchar(100);not null" json:"testimonial_name"`
	TestimonialDesignation string    `gorm:"column:testimonial_designation;type:varchar(100);not null" json:"testimonial_designation"`
	TestimonialContent     string    `gorm:"column:testimonial_content;type:text;not null" json:"testimonial_content"`
	TestimonialPhoto       string    `gorm:"column:testimonial_photo;type:varchar(255)" json:"testimonial_photo"`
	TestimonialRating      int       `gorm:"column:testimonial_rating;not null" json:"testimonial_rating"`
	TestimonialIsApproved  bool      `gorm:"column:testimonial_is_approved;not null" json:"testimonial_is_approved"`
	TestimonialCreatedAt   time.Time `gorm:"column:testimonial_created_at;autoCreateTime" json:"testimonial_created_at"`
}

func (TestimonialModel) TableName() string {
	return "testimonials"
}

func (m *TestimonialModel) BeforeCreate(tx *gorm.DB) error {
	if m.TestimonialID == uuid.Nil {
		m.TestimonialID = uuid.New()
	}
	if m.TestimonialRating == 0 {
		m.TestimonialRating = DefaultTestimonialRating
	}
	return nil
}
