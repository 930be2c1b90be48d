package controller

import (
	"context"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/features/publications/news/model"
	helper "darulfatheh_backend/internals/helpers"
)

const searchParam = "search-field"

// PublishedNews berita terbit terbaru (limit <= 0 → semua).
func PublishedNews(ctx context.Context, db *gorm.DB, limit int, excludeSlug string) ([]model.NewsModel, error) {
	q := db.WithContext(ctx).
		Where("news_is_published = ?", true).
		Order("news_published_at DESC")
	if excludeSlug != "" {
		q = q.Where("news_slug <> ?", excludeSlug)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []model.NewsModel
	return out, q.Find(&out).Error
}

// GET /blog/?search-field=...
func (nc *NewsController) Blog(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query(searchParam, c.FormValue(searchParam)))

	q := nc.DB.Model(&model.NewsModel{}).Where("news_is_published = ?", true)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("(LOWER(news_title) LIKE ? OR LOWER(news_content) LIKE ?)", like, like)
	}

	page, err := helper.PaginateQuery[model.NewsModel](
		c.UserContext(), q, NewsOrder, helper.PerPagePublic, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list news")
	}
	if search != "" {
		page.Keep = url.Values{searchParam: {search}}
	}
	return helper.RenderPublic(c, "public/blog", fiber.Map{
		"Title":       "Blog",
		"Page":        page,
		"SearchQuery": search,
	})
}

// GET /news/:slug/
func (nc *NewsController) Detail(c *fiber.Ctx) error {
	news, err := helper.FindOr404[model.NewsModel](c, nc.DB, "news_slug", c.Params("slug"))
	if err != nil {
		return err
	}
	recent, err := PublishedNews(c.UserContext(), nc.DB, 3, news.NewsSlug)
	if err != nil {
		return helper.FromDBError(err, "list recent news")
	}

	var categories []struct {
		CategoryID   string
		CategoryName string
	}
	if err := nc.DB.WithContext(c.UserContext()).
		Table("categories").
		Select("category_id, category_name").
		Order("category_name ASC").
		Scan(&categories).Error; err != nil {
		return helper.FromDBError(err, "list categories")
	}

	return helper.RenderPublic(c, "public/news-detail", fiber.Map{
		"Title":      news.NewsTitle,
		"News":       news,
		"RecentNews": recent,
		"Categories": categories,
	})
}
