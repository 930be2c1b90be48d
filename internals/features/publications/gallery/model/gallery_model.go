package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/helpers/imageopt"
)

// =========================
// Category
// =========================
type CategoryModel struct {
	CategoryID        uuid.UUID `gorm:"column:category_id;type:uuid;primaryKey" json:"category_id"`
	CategoryName      string    `gorm:"column:category_name;type:varchar(100);not null;uniqueIndex:uq_categories_name" json:"category_name"`
	CategoryCreatedAt time.Time `gorm:"column:category_created_at;autoCreateTime" json:"category_created_at"`

	Images []GalleryImageModel `gorm:"foreignKey:ImageCategoryID;references:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"images,omitempty"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (m *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.CategoryID == uuid.Nil {
		m.CategoryID = uuid.New()
	}
	return nil
}

// =========================
// Gallery image
// =========================

// MaxImageTitle panjang kolom image_title (rune).
const MaxImageTitle = 150

type GalleryImageModel struct {
	ImageID         uuid.UUID `gorm:"column:image_id;type:uuid;primaryKey" json:"image_id"`
	ImageCategoryID uuid.UUID `gorm:"column:image_category_id;type:uuid;not null;index" json:"image_category_id"`
	ImageTitle      string    `gorm:"column:image_title;type:varchar(150)" json:"image_title"`
	ImagePath       string    `gorm:"column:image_path;type:varchar(255);not null" json:"image_path"`
	ImageUploadedAt time.Time `gorm:"column:image_uploaded_at;autoCreateTime" json:"image_uploaded_at"`
}

func (GalleryImageModel) TableName() string {
	return "gallery_images"
}

func (m *GalleryImageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ImageID == uuid.Nil {
		m.ImageID = uuid.New()
	}
	return nil
}

func (m *GalleryImageModel) ImageAttributes() []imageopt.ImageAttribute {
	return []imageopt.ImageAttribute{{Name: "image", Path: m.ImagePath}}
}
