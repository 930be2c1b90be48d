package dto

import (
	"strings"

	"darulfatheh_backend/internals/features/publications/news/model"
)

type NewsRequest struct {
	Title       string `form:"title" validate:"required,max=200"`
	Content     string `form:"content" validate:"required"`
	Author      string `form:"author" validate:"max=100"`
	IsPublished bool   `form:"-"`
}

// ApplyTo tidak menyentuh title/slug: perubahan title diurus controller.
func (r *NewsRequest) ApplyTo(m *model.NewsModel) {
	m.NewsContent = strings.TrimSpace(r.Content)
	m.NewsAuthor = strings.TrimSpace(r.Author)
	m.NewsIsPublished = r.IsPublished
}

func (r *NewsRequest) CleanTitle() string {
	return strings.TrimSpace(r.Title)
}
