package dto

import (
	"strings"

	"darulfatheh_backend/internals/features/profiles/testimonials/model"
)

type TestimonialRequest struct {
	Name        string `form:"name" validate:"required,max=100"`
	Designation string `form:"designation" validate:"required,max=100"`
	Content     string `form:"content" validate:"required"`
	Rating      int    `form:"rating" validate:"omitempty,min=1,max=5"`
	IsApproved  bool   `form:"-"`
}

func (r *TestimonialRequest) ApplyTo(m *model.TestimonialModel) {
	m.TestimonialName = strings.TrimSpace(r.Name)
	m.TestimonialDesignation = strings.TrimSpace(r.Designation)
	m.TestimonialContent = strings.TrimSpace(r.Content)
	m.TestimonialRating = r.Rating
	if m.TestimonialRating == 0 {
		m.TestimonialRating = model.DefaultTestimonialRating
	}
	m.TestimonialIsApproved = r.IsApproved
}
