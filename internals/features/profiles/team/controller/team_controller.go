package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/features/profiles/team/dto"
	"darulfatheh_backend/internals/features/profiles/team/model"
	helper "darulfatheh_backend/internals/helpers"
	"darulfatheh_backend/internals/helpers/imageopt"
)

const teamListPath = "/dashboard/team/"

// TeamOrder urutan kanonik anggota tim: nama A-Z. team_order hanya
// disimpan dari form, tidak ikut mengurutkan.
var TeamOrder = []helper.SortKey{helper.Asc("team_name")}

type TeamController struct {
	DB     *gorm.DB
	Media  *helper.MediaStore
	Images *imageopt.Processor
}

func NewTeamController(deps *helper.Deps) *TeamController {
	return &TeamController{DB: deps.DB, Media: deps.Media, Images: deps.Images}
}

// =============================
// 📋 Admin list
// =============================
func (tc *TeamController) List(c *fiber.Ctx) error {
	page, err := helper.PaginateQuery[model.ManagementTeamModel](
		c.UserContext(), tc.DB.Model(&model.ManagementTeamModel{}),
		TeamOrder, helper.PerPageAdmin, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list team")
	}
	return helper.RenderAdmin(c, "admin/team/list", fiber.Map{
		"Title":  "Management Team",
		"Active": "team",
		"Page":   page,
	})
}

// =============================
// ➕ Create
// =============================
func (tc *TeamController) CreatePage(c *fiber.Ctx) error {
	return tc.renderForm(c, &model.ManagementTeamModel{}, false, "")
}

func (tc *TeamController) Create(c *fiber.Ctx) error {
	var req dto.TeamRequest
	item := &model.ManagementTeamModel{}
	if msg := helper.BindForm(c, &req); msg != "" {
		return tc.renderForm(c, item, false, msg)
	}
	req.ApplyTo(item)

	photo, err := tc.Media.ReplaceImage(c, "photo", helper.FolderTeam, "")
	if err != nil {
		if helper.IsUploadError(err) {
			return tc.renderForm(c, item, false, err.Error())
		}
		return err
	}
	item.TeamPhoto = photo

	if err := tc.DB.WithContext(c.UserContext()).Create(item).Error; err != nil {
		return helper.FromDBError(err, "create team member")
	}
	tc.Images.OnPersisted(item)
	return helper.RedirectSuccess(c, teamListPath, "Team member added successfully.")
}

// =============================
// ✏️ Edit
// =============================
func (tc *TeamController) EditPage(c *fiber.Ctx) error {
	item, err := tc.load(c)
	if err != nil {
		return err
	}
	return tc.renderForm(c, item, true, "")
}

func (tc *TeamController) Update(c *fiber.Ctx) error {
	item, err := tc.load(c)
	if err != nil {
		return err
	}
	var req dto.TeamRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return tc.renderForm(c, item, true, msg)
	}
	req.ApplyTo(item)

	if item.TeamPhoto, err = tc.Media.ReplaceImage(c, "photo", helper.FolderTeam, item.TeamPhoto); err != nil {
		if helper.IsUploadError(err) {
			return tc.renderForm(c, item, true, err.Error())
		}
		return err
	}

	if err := tc.DB.WithContext(c.UserContext()).Save(item).Error; err != nil {
		return helper.FromDBError(err, "update team member")
	}
	tc.Images.OnPersisted(item)
	return helper.RedirectSuccess(c, teamListPath, "Team member updated successfully.")
}

// =============================
// 🗑️ Delete (GET|POST)
// =============================
func (tc *TeamController) Delete(c *fiber.Ctx) error {
	item, err := tc.load(c)
	if err != nil {
		return err
	}
	if err := tc.DB.WithContext(c.UserContext()).Delete(item).Error; err != nil {
		return helper.FromDBError(err, "delete team member")
	}
	return helper.RedirectSuccess(c, teamListPath, "Team member deleted.")
}

// =============================
// 🌐 Public: /our-team/
// =============================
func (tc *TeamController) PublicList(c *fiber.Ctx) error {
	page, err := helper.PaginateQuery[model.ManagementTeamModel](
		c.UserContext(), tc.DB.Model(&model.ManagementTeamModel{}),
		TeamOrder, helper.PerPagePublic, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list team")
	}
	return helper.RenderPublic(c, "public/our-team", fiber.Map{
		"Title": "Our Team",
		"Page":  page,
	})
}

func (tc *TeamController) load(c *fiber.Ctx) (*model.ManagementTeamModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	return helper.FindOr404[model.ManagementTeamModel](c, tc.DB, "team_id", id)
}

func (tc *TeamController) renderForm(c *fiber.Ctx, item *model.ManagementTeamModel, isEdit bool, errMsg string) error {
	title := "Add Team Member"
	if isEdit {
		title = "Edit Team Member"
	}
	return helper.RenderAdmin(c, "admin/team/form", fiber.Map{
		"Title":  title,
		"Active": "team",
		"Item":   item,
		"IsEdit": isEdit,
		"Error":  errMsg,
	})
}
