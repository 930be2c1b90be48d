package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/features/profiles/alumni/dto"
	"darulfatheh_backend/internals/features/profiles/alumni/model"
	helper "darulfatheh_backend/internals/helpers"
	"darulfatheh_backend/internals/helpers/imageopt"
)

const alumniListPath = "/dashboard/alumni/"

var (
	AlumniProfileOrder = []helper.SortKey{helper.Desc("alumni_created_at")}
	AlumniEventOrder   = []helper.SortKey{helper.Desc("event_date"), helper.Desc("event_created_at")}
)

type AlumniController struct {
	DB     *gorm.DB
	Media  *helper.MediaStore
	Images *imageopt.Processor
}

func NewAlumniController(deps *helper.Deps) *AlumniController {
	return &AlumniController{DB: deps.DB, Media: deps.Media, Images: deps.Images}
}

// =============================
// 🎓 Alumni profiles (admin)
// =============================
func (ac *AlumniController) ListProfiles(c *fiber.Ctx) error {
	page, err := helper.PaginateQuery[model.AlumniProfileModel](
		c.UserContext(), ac.DB.Model(&model.AlumniProfileModel{}),
		AlumniProfileOrder, helper.PerPageAdminLarge, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list alumni")
	}
	return helper.RenderAdmin(c, "admin/alumni/list", fiber.Map{
		"Title":  "Alumni",
		"Active": "alumni",
		"Page":   page,
	})
}

func (ac *AlumniController) CreateProfilePage(c *fiber.Ctx) error {
	return ac.renderProfileForm(c, &model.AlumniProfileModel{}, false, "")
}

func (ac *AlumniController) CreateProfile(c *fiber.Ctx) error {
	item := &model.AlumniProfileModel{}
	var req dto.AlumniProfileRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return ac.renderProfileForm(c, item, false, msg)
	}
	req.ApplyTo(item)

	fh := helper.OptionalFile(c, "photo")
	if fh == nil {
		return ac.renderProfileForm(c, item, false, "photo is required")
	}
	photo, err := ac.Media.SaveImage(fh, helper.FolderAlumniPhotos)
	if err != nil {
		if helper.IsUploadError(err) {
			return ac.renderProfileForm(c, item, false, err.Error())
		}
		return err
	}
	item.AlumniPhoto = photo

	if err := ac.DB.WithContext(c.UserContext()).Create(item).Error; err != nil {
		return helper.FromDBError(err, "create alumni")
	}
	ac.Images.OnPersisted(item)
	return helper.RedirectSuccess(c, alumniListPath, "Alumni profile created successfully!")
}

func (ac *AlumniController) EditProfilePage(c *fiber.Ctx) error {
	item, err := ac.loadProfile(c)
	if err != nil {
		return err
	}
	return ac.renderProfileForm(c, item, true, "")
}

func (ac *AlumniController) UpdateProfile(c *fiber.Ctx) error {
	item, err := ac.loadProfile(c)
	if err != nil {
		return err
	}
	var req dto.AlumniProfileRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return ac.renderProfileForm(c, item, true, msg)
	}
	req.ApplyTo(item)

	if item.AlumniPhoto, err = ac.Media.ReplaceImage(c, "photo", helper.FolderAlumniPhotos, item.AlumniPhoto); err != nil {
		if helper.IsUploadError(err) {
			return ac.renderProfileForm(c, item, true, err.Error())
		}
		return err
	}
	if err := ac.DB.WithContext(c.UserContext()).Save(item).Error; err != nil {
		return helper.FromDBError(err, "update alumni")
	}
	ac.Images.OnPersisted(item)
	return helper.RedirectSuccess(c, alumniListPath, "Alumni profile updated successfully!")
}

func (ac *AlumniController) DeleteProfile(c *fiber.Ctx) error {
	item, err := ac.loadProfile(c)
	if err != nil {
		return err
	}
	if err := ac.DB.WithContext(c.UserContext()).Delete(item).Error; err != nil {
		return helper.FromDBError(err, "delete alumni")
	}
	return helper.RedirectSuccess(c, alumniListPath, "Alumni profile deleted successfully!")
}

// =============================
// 🌐 Public: /alumni/
// =============================
func (ac *AlumniController) PublicPage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var events []model.AlumniEventModel
	if err := ac.DB.WithContext(ctx).
		Where("event_is_visible = ?", true).
		Order("event_date DESC").
		Find(&events).Error; err != nil {
		return helper.FromDBError(err, "list alumni events")
	}

	page, err := helper.PaginateQuery[model.AlumniProfileModel](
		ctx, ac.DB.Model(&model.AlumniProfileModel{}),
		AlumniProfileOrder, helper.PerPagePublic, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list alumni")
	}
	return helper.RenderPublic(c, "public/alumni", fiber.Map{
		"Title":  "Alumni",
		"Events": events,
		"Page":   page,
	})
}

func (ac *AlumniController) loadProfile(c *fiber.Ctx) (*model.AlumniProfileModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	return helper.FindOr404[model.AlumniProfileModel](c, ac.DB, "alumni_id", id)
}

func (ac *AlumniController) renderProfileForm(c *fiber.Ctx, item *model.AlumniProfileModel, isEdit bool, errMsg string) error {
	title := "Add Alumni"
	if isEdit {
		title = "Edit Alumni"
	}
	return helper.RenderAdmin(c, "admin/alumni/form", fiber.Map{
		"Title":  title,
		"Active": "alumni",
		"Item":   item,
		"IsEdit": isEdit,
		"Error":  errMsg,
	})
}
