package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/features/finance/donations/dto"
	"darulfatheh_backend/internals/features/finance/donations/model"
	helper "darulfatheh_backend/internals/helpers"
	"darulfatheh_backend/internals/helpers/imageopt"
)

const (
	donationListPath = "/dashboard/donations/"
	donatePath       = "/donate/"
	msgInvalidAmount = "amount must be a number between 0 and 99999999.99"

	MsgDonationSubmitted = "Thank you! Your donation details have been submitted for verification."
)

var DonationOrder = []helper.SortKey{helper.Desc("donation_donated_at")}

type DonationController struct {
	DB     *gorm.DB
	Media  *helper.MediaStore
	Images *imageopt.Processor
}

func NewDonationController(deps *helper.Deps) *DonationController {
	return &DonationController{DB: deps.DB, Media: deps.Media, Images: deps.Images}
}

// =============================
// 💰 Admin
// =============================
func (dc *DonationController) List(c *fiber.Ctx) error {
	page, err := helper.PaginateQuery[model.DonationModel](
		c.UserContext(), dc.DB.Model(&model.DonationModel{}),
		DonationOrder, helper.PerPageAdmin, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list donations")
	}
	return helper.RenderAdmin(c, "admin/donations/list", fiber.Map{
		"Title":  "Donations",
		"Active": "donations",
		"Page":   page,
	})
}

func (dc *DonationController) CreatePage(c *fiber.Ctx) error {
	return dc.renderForm(c, &model.DonationModel{}, false, "")
}

func (dc *DonationController) Create(c *fiber.Ctx) error {
	return dc.save(c, &model.DonationModel{}, false)
}

func (dc *DonationController) EditPage(c *fiber.Ctx) error {
	item, err := dc.load(c)
	if err != nil {
		return err
	}
	return dc.renderForm(c, item, true, "")
}

func (dc *DonationController) Update(c *fiber.Ctx) error {
	item, err := dc.load(c)
	if err != nil {
		return err
	}
	return dc.save(c, item, true)
}

func (dc *DonationController) Delete(c *fiber.Ctx) error {
	item, err := dc.load(c)
	if err != nil {
		return err
	}
	if err := dc.DB.WithContext(c.UserContext()).Delete(item).Error; err != nil {
		return helper.FromDBError(err, "delete donation")
	}
	return helper.RedirectSuccess(c, donationListPath, "Donation record deleted successfully!")
}

func (dc *DonationController) save(c *fiber.Ctx, item *model.DonationModel, isEdit bool) error {
	var req dto.DonationRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return dc.renderForm(c, item, isEdit, msg)
	}
	amount, ok := req.ParseAmount()
	if !ok {
		return dc.renderForm(c, item, isEdit, msgInvalidAmount)
	}
	req.IsAnonymous = helper.Checkbox(c, "is_anonymous")
	req.ApplyTo(item, amount)

	var err error
	if item.DonationScreenshot, err = dc.Media.ReplaceImage(c, "screenshot", helper.FolderDonations, item.DonationScreenshot); err != nil {
		if helper.IsUploadError(err) {
			return dc.renderForm(c, item, isEdit, err.Error())
		}
		return err
	}

	db := dc.DB.WithContext(c.UserContext())
	msg := "Donation record added successfully!"
	if isEdit {
		err = db.Save(item).Error
		msg = "Donation record updated successfully!"
	} else {
		err = db.Create(item).Error
	}
	if err != nil {
		return helper.FromDBError(err, "save donation")
	}
	dc.Images.OnPersisted(item)
	return helper.RedirectSuccess(c, donationListPath, msg)
}

func (dc *DonationController) load(c *fiber.Ctx) (*model.DonationModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	return helper.FindOr404[model.DonationModel](c, dc.DB, "donation_id", id)
}

func (dc *DonationController) renderForm(c *fiber.Ctx, item *model.DonationModel, isEdit bool, errMsg string) error {
	title := "Add Donation"
	if isEdit {
		title = "Edit Donation"
	}
	return helper.RenderAdmin(c, "admin/donations/form", fiber.Map{
		"Title":  title,
		"Active": "donations",
		"Item":   item,
		"IsEdit": isEdit,
		"Error":  errMsg,
	})
}

// =============================
// 🌐 Public: /donate/
// =============================
func (dc *DonationController) DonatePage(c *fiber.Ctx) error {
	return helper.RenderPublic(c, "public/donate", fiber.Map{"Title": "Donate"})
}

func (dc *DonationController) Donate(c *fiber.Ctx) error {
	var req dto.PublicDonationRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return helper.RenderPublic(c, "public/donate", fiber.Map{"Title": "Donate", "Error": msg})
	}
	item := req.ToModel()

	shot, err := dc.Media.ReplaceImage(c, "screenshot", helper.FolderDonations, "")
	if err != nil {
		if helper.IsUploadError(err) {
			return helper.RenderPublic(c, "public/donate", fiber.Map{"Title": "Donate", "Error": err.Error()})
		}
		return err
	}
	item.DonationScreenshot = shot

	if err := dc.DB.WithContext(c.UserContext()).Create(item).Error; err != nil {
		return helper.FromDBError(err, "create donation")
	}
	dc.Images.OnPersisted(item)
	return helper.RedirectSuccess(c, donatePath, MsgDonationSubmitted)
}
