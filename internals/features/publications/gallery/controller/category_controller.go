package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/features/publications/gallery/dto"
	"darulfatheh_backend/internals/features/publications/gallery/model"
	helper "darulfatheh_backend/internals/helpers"
	"darulfatheh_backend/internals/helpers/imageopt"
)

const (
	categoryListPath   = "/dashboard/categories/"
	msgCategoryTaken   = "name: category with this name already exists"
	msgCategoryUpdated = "Category updated successfully."
)

var (
	CategoryOrder     = []helper.SortKey{helper.Desc("category_created_at")}
	GalleryImageOrder = []helper.SortKey{helper.Desc("image_uploaded_at")}
)

type GalleryController struct {
	DB     *gorm.DB
	Media  *helper.MediaStore
	Images *imageopt.Processor
}

func NewGalleryController(deps *helper.Deps) *GalleryController {
	return &GalleryController{DB: deps.DB, Media: deps.Media, Images: deps.Images}
}

// AllCategories untuk dropdown upload & filter galeri publik.
func (gc *GalleryController) AllCategories(c *fiber.Ctx) ([]model.CategoryModel, error) {
	var out []model.CategoryModel
	err := gc.DB.WithContext(c.UserContext()).Order("category_name ASC").Find(&out).Error
	return out, err
}

// =============================
// 🏷️ Categories
// =============================
func (gc *GalleryController) ListCategories(c *fiber.Ctx) error {
	page, err := helper.PaginateQuery[model.CategoryModel](
		c.UserContext(), gc.DB.Model(&model.CategoryModel{}),
		CategoryOrder, helper.PerPageAdminLarge, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list categories")
	}
	return helper.RenderAdmin(c, "admin/categories/list", fiber.Map{
		"Title":  "Categories",
		"Active": "categories",
		"Page":   page,
	})
}

func (gc *GalleryController) CreateCategoryPage(c *fiber.Ctx) error {
	return gc.renderCategoryForm(c, "", "")
}

func (gc *GalleryController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return gc.renderCategoryForm(c, req.Name, msg)
	}
	item := &model.CategoryModel{CategoryName: strings.TrimSpace(req.Name)}
	err := gc.DB.WithContext(c.UserContext()).Create(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return gc.renderCategoryForm(c, req.Name, msgCategoryTaken)
	}
	if err != nil {
		return helper.FromDBError(err, "create category")
	}
	return helper.RedirectSuccess(c, categoryListPath, "Category added successfully.")
}

// UpdateCategory hanya POST; GET langsung balik ke list.
func (gc *GalleryController) UpdateCategory(c *fiber.Ctx) error {
	item, err := gc.loadCategory(c)
	if err != nil {
		return err
	}
	if c.Method() != fiber.MethodPost {
		return c.Redirect(categoryListPath, fiber.StatusFound)
	}

	var req dto.CategoryRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		helper.FlashError(c, msg)
		return c.Redirect(categoryListPath, fiber.StatusFound)
	}
	item.CategoryName = strings.TrimSpace(req.Name)
	err = gc.DB.WithContext(c.UserContext()).Save(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		helper.FlashError(c, msgCategoryTaken)
		return c.Redirect(categoryListPath, fiber.StatusFound)
	}
	if err != nil {
		return helper.FromDBError(err, "update category")
	}
	return helper.RedirectSuccess(c, categoryListPath, msgCategoryUpdated)
}

// DeleteCategory hanya POST; semua gambar kategori ikut terhapus.
func (gc *GalleryController) DeleteCategory(c *fiber.Ctx) error {
	item, err := gc.loadCategory(c)
	if err != nil {
		return err
	}
	if c.Method() != fiber.MethodPost {
		return c.Redirect(categoryListPath, fiber.StatusFound)
	}
	err = gc.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("image_category_id = ?", item.CategoryID).
			Delete(&model.GalleryImageModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(item).Error
	})
	if err != nil {
		return helper.FromDBError(err, "delete category")
	}
	return helper.RedirectSuccess(c, categoryListPath, "Category deleted successfully.")
}

func (gc *GalleryController) loadCategory(c *fiber.Ctx) (*model.CategoryModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	return helper.FindOr404[model.CategoryModel](c, gc.DB, "category_id", id)
}

func (gc *GalleryController) renderCategoryForm(c *fiber.Ctx, name, errMsg string) error {
	return helper.RenderAdmin(c, "admin/categories/form", fiber.Map{
		"Title":  "Add Category",
		"Active": "categories",
		"Name":   name,
		"Error":  errMsg,
	})
}
