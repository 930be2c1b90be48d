package controller

import (
	"errors"
	"path"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/features/publications/gallery/dto"
	"darulfatheh_backend/internals/features/publications/gallery/model"
	helper "darulfatheh_backend/internals/helpers"
)

const galleryListPath = "/dashboard/gallery/"

// CategoryGallery satu blok kategori di halaman galeri admin.
type CategoryGallery struct {
	Category model.CategoryModel
	Page     helper.Page[model.GalleryImageModel]
}

// =============================
// 🖼️ Admin gallery: per kategori, token halaman "page_<categoryID>"
// =============================
func (gc *GalleryController) ListImages(c *fiber.Ctx) error {
	var categories []model.CategoryModel
	if err := gc.DB.WithContext(c.UserContext()).
		Order("category_created_at DESC").
		Find(&categories).Error; err != nil {
		return helper.FromDBError(err, "list categories")
	}

	ids := make([]uuid.UUID, len(categories))
	for i, cat := range categories {
		ids[i] = cat.CategoryID
	}
	pages, err := helper.PaginateGroups[uuid.UUID, model.GalleryImageModel](
		c.UserContext(), ids,
		func(id uuid.UUID) *gorm.DB {
			return gc.DB.Model(&model.GalleryImageModel{}).Where("image_category_id = ?", id)
		},
		GalleryImageOrder, helper.PerPageAdminGallery,
		func(id uuid.UUID) (string, string) {
			param := "page_" + id.String()
			return param, c.Query(param)
		},
	)
	if err != nil {
		return helper.FromDBError(err, "list gallery images")
	}

	blocks := make([]CategoryGallery, 0, len(categories))
	for _, cat := range categories {
		blocks = append(blocks, CategoryGallery{Category: cat, Page: pages[cat.CategoryID]})
	}
	return helper.RenderAdmin(c, "admin/gallery/list", fiber.Map{
		"Title":      "Gallery",
		"Active":     "gallery",
		"Categories": blocks,
	})
}

func (gc *GalleryController) UploadPage(c *fiber.Ctx) error {
	return gc.renderUpload(c, "")
}

// Upload: banyak file (field "images") ke satu kategori, judul = nama file.
func (gc *GalleryController) Upload(c *fiber.Ctx) error {
	var req dto.GalleryUploadRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return gc.renderUpload(c, msg)
	}
	catID, _ := uuid.Parse(req.Category)
	var category model.CategoryModel
	if err := gc.DB.WithContext(c.UserContext()).
		Where("category_id = ?", catID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gc.renderUpload(c, "category: select a valid choice")
		}
		return helper.FromDBError(err, "load category")
	}

	files := helper.MultipleFiles(c, "images")
	if len(files) == 0 {
		return gc.renderUpload(c, "images: select at least one image")
	}

	saved := 0
	for _, fh := range files {
		rel, err := gc.Media.SaveImage(fh, helper.FolderGallery)
		if err != nil {
			if helper.IsUploadError(err) {
				log.WithError(err).WithField("file", fh.Filename).Warn("gallery upload skipped")
				continue
			}
			return err
		}
		img := &model.GalleryImageModel{
			ImageCategoryID: category.CategoryID,
			ImageTitle:      helper.TruncateRunes(path.Base(fh.Filename), model.MaxImageTitle),
			ImagePath:       rel,
		}
		if err := gc.DB.WithContext(c.UserContext()).Create(img).Error; err != nil {
			return helper.FromDBError(err, "create gallery image")
		}
		gc.Images.OnPersisted(img)
		saved++
	}
	if saved == 0 {
		return gc.renderUpload(c, helper.ErrNotAnImage.Error())
	}
	return helper.RedirectSuccess(c, galleryListPath, "Images uploaded successfully")
}

// DeleteImage hanya POST; GET balik ke list tanpa menghapus.
func (gc *GalleryController) DeleteImage(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	img, err := helper.FindOr404[model.GalleryImageModel](c, gc.DB, "image_id", id)
	if err != nil {
		return err
	}
	if c.Method() != fiber.MethodPost {
		return c.Redirect(galleryListPath, fiber.StatusFound)
	}
	if err := gc.DB.WithContext(c.UserContext()).Delete(img).Error; err != nil {
		return helper.FromDBError(err, "delete gallery image")
	}
	return helper.RedirectSuccess(c, galleryListPath, "Image deleted successfully")
}

func (gc *GalleryController) renderUpload(c *fiber.Ctx, errMsg string) error {
	categories, err := gc.AllCategories(c)
	if err != nil {
		return helper.FromDBError(err, "list categories")
	}
	return helper.RenderAdmin(c, "admin/gallery/form", fiber.Map{
		"Title":      "Upload Images",
		"Active":     "gallery",
		"Categories": categories,
		"Error":      errMsg,
	})
}

// =============================
// 🌐 Public: /gallery/?category=<id>
// =============================
func (gc *GalleryController) PublicGallery(c *fiber.Ctx) error {
	categories, err := gc.AllCategories(c)
	if err != nil {
		return helper.FromDBError(err, "list categories")
	}

	q := gc.DB.Model(&model.GalleryImageModel{})
	active := ""
	if id, err := uuid.Parse(c.Query("category")); err == nil {
		active = id.String()
		q = q.Where("image_category_id = ?", id)
	}

	page, err := helper.PaginateQuery[model.GalleryImageModel](
		c.UserContext(), q, GalleryImageOrder, helper.PerPagePublicGrid, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list gallery images")
	}
	if active != "" {
		page.Keep = map[string][]string{"category": {active}}
	}
	return helper.RenderPublic(c, "public/gallery", fiber.Map{
		"Title":          "Gallery",
		"Page":           page,
		"Categories":     categories,
		"ActiveCategory": active,
	})
}
