package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsModel struct {
	NewsID          uuid.UUID `gorm:"column:news_id;type:uuid;primaryKey" json:"news_id"`
	NewsTitle       string    `gorm:"column:news_title;type:varchar(200);not null" json:"news_title"`
	NewsSlug        string    `gorm:"column:news_slug;type:varchar(255);not null;uniqueIndex:uq_news_slug" json:"news_slug"`
	NewsContent     string    `gorm:"column:news_content;type:text;not null" json:"news_content"`
	NewsAuthor      string    `gorm:"column:news_author;type:varchar(100)" json:"news_author"`
	NewsImage       string    `gorm:"column:news_image;type:varchar(255)" json:"news_image"`
	NewsIsPublished bool      `gorm:"column:news_is_published;not null" json:"news_is_published"`
	NewsPublishedAt time.Time `gorm:"column:news_published_at;not null" json:"news_published_at"`
	NewsCreatedAt   time.Time `gorm:"column:news_created_at;autoCreateTime" json:"news_created_at"`
	NewsUpdatedAt   time.Time `gorm:"column:news_updated_at;autoUpdateTime" json:"news_updated_at"`
}

func (NewsModel) TableName() string {
	return "news"
}

func (m *NewsModel) BeforeCreate(tx *gorm.DB) error {
	if m.NewsID == uuid.Nil {
		m.NewsID = uuid.New()
	}
	if m.NewsPublishedAt.IsZero() {
		m.NewsPublishedAt = time.Now()
	}
	return nil
}
