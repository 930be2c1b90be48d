package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/features/publications/news/dto"
	"darulfatheh_backend/internals/features/publications/news/model"
	helper "darulfatheh_backend/internals/helpers"
	"darulfatheh_backend/internals/helpers/imageopt"
)

const newsListPath = "/dashboard/news/"

var (
	NewsOrder    = []helper.SortKey{helper.Desc("news_published_at")}
	newsSlugOpts = helper.SlugOptions{Table: "news", SlugColumn: "news_slug", IDColumn: "news_id"}
)

type NewsController struct {
	DB     *gorm.DB
	Media  *helper.MediaStore
	Images *imageopt.Processor
}

func NewNewsController(deps *helper.Deps) *NewsController {
	return &NewsController{DB: deps.DB, Media: deps.Media, Images: deps.Images}
}

func (nc *NewsController) List(c *fiber.Ctx) error {
	page, err := helper.PaginateQuery[model.NewsModel](
		c.UserContext(), nc.DB.Model(&model.NewsModel{}),
		NewsOrder, helper.PerPageAdmin, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list news")
	}
	return helper.RenderAdmin(c, "admin/news/list", fiber.Map{
		"Title":  "News",
		"Active": "news",
		"Page":   page,
	})
}

func (nc *NewsController) CreatePage(c *fiber.Ctx) error {
	return nc.renderForm(c, &model.NewsModel{NewsIsPublished: true}, false, "")
}

// Create: slug selalu dibuat dari title.
func (nc *NewsController) Create(c *fiber.Ctx) error {
	item := &model.NewsModel{}
	var req dto.NewsRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return nc.renderForm(c, item, false, msg)
	}
	req.IsPublished = helper.Checkbox(c, "is_published")
	req.ApplyTo(item)
	item.NewsTitle = req.CleanTitle()

	img, err := nc.Media.ReplaceImage(c, "image", helper.FolderNews, "")
	if err != nil {
		if helper.IsUploadError(err) {
			return nc.renderForm(c, item, false, err.Error())
		}
		return err
	}
	item.NewsImage = img

	ctx := c.UserContext()
	err = helper.RetryOnDuplicate(helper.SlugRetryAttempts, func() error {
		slug, err := helper.GenerateUniqueSlug(ctx, nc.DB, newsSlugOpts, item.NewsTitle, nil)
		if err != nil {
			return err
		}
		item.NewsSlug = slug
		return nc.DB.WithContext(ctx).Create(item).Error
	})
	if err != nil {
		return helper.FromDBError(err, "create news")
	}
	nc.Images.OnPersisted(item)
	return helper.RedirectSuccess(c, newsListPath, "News added successfully!")
}

func (nc *NewsController) EditPage(c *fiber.Ctx) error {
	item, err := nc.load(c)
	if err != nil {
		return err
	}
	return nc.renderForm(c, item, true, "")
}

// Update: slug hanya dibuat ulang kalau title berubah (unik, kecuali diri sendiri).
func (nc *NewsController) Update(c *fiber.Ctx) error {
	item, err := nc.load(c)
	if err != nil {
		return err
	}
	var req dto.NewsRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return nc.renderForm(c, item, true, msg)
	}
	req.IsPublished = helper.Checkbox(c, "is_published")
	req.ApplyTo(item)

	if item.NewsImage, err = nc.Media.ReplaceImage(c, "image", helper.FolderNews, item.NewsImage); err != nil {
		if helper.IsUploadError(err) {
			return nc.renderForm(c, item, true, err.Error())
		}
		return err
	}

	ctx := c.UserContext()
	titleChanged := req.CleanTitle() != item.NewsTitle
	item.NewsTitle = req.CleanTitle()

	err = helper.RetryOnDuplicate(helper.SlugRetryAttempts, func() error {
		if titleChanged {
			slug, err := helper.GenerateUniqueSlug(ctx, nc.DB, newsSlugOpts, item.NewsTitle, &item.NewsID)
			if err != nil {
				return err
			}
			item.NewsSlug = slug
		}
		return nc.DB.WithContext(ctx).Save(item).Error
	})
	if err != nil {
		return helper.FromDBError(err, "update news")
	}
	nc.Images.OnPersisted(item)
	return helper.RedirectSuccess(c, newsListPath, "News updated successfully!")
}

func (nc *NewsController) Delete(c *fiber.Ctx) error {
	item, err := nc.load(c)
	if err != nil {
		return err
	}
	if err := nc.DB.WithContext(c.UserContext()).Delete(item).Error; err != nil {
		return helper.FromDBError(err, "delete news")
	}
	return helper.RedirectSuccess(c, newsListPath, "News deleted successfully!")
}

func (nc *NewsController) load(c *fiber.Ctx) (*model.NewsModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	return helper.FindOr404[model.NewsModel](c, nc.DB, "news_id", id)
}

func (nc *NewsController) renderForm(c *fiber.Ctx, item *model.NewsModel, isEdit bool, errMsg string) error {
	title := "Add News"
	if isEdit {
		title = "Edit News"
	}
	return helper.RenderAdmin(c, "admin/news/form", fiber.Map{
		"Title":  title,
		"Active": "news",
		"Item":   item,
		"IsEdit": isEdit,
		"Error":  errMsg,
	})
}
