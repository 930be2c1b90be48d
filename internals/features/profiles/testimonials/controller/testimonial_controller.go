package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/features/profiles/testimonials/dto"
	"darulfatheh_backend/internals/features/profiles/testimonials/model"
	helper "darulfatheh_backend/internals/helpers"
	"darulfatheh_backend/internals/helpers/imageopt"
)

const testimonialListPath = "/dashboard/testimonials/"

var TestimonialOrder = []helper.SortKey{helper.Desc("testimonial_created_at")}

type TestimonialController struct {
	DB     *gorm.DB
	Media  *helper.MediaStore
	Images *imageopt.Processor
}

func NewTestimonialController(deps *helper.Deps) *TestimonialController {
	return &TestimonialController{DB: deps.DB, Media: deps.Media, Images: deps.Images}
}

// ApprovedTestimonials dipakai halaman publik (home, about).
func ApprovedTestimonials(ctx context.Context, db *gorm.DB) ([]model.TestimonialModel, error) {
	var out []model.TestimonialModel
	err := db.WithContext(ctx).
		Where("testimonial_is_approved = ?", true).
		Order("testimonial_created_at DESC").
		Find(&out).Error
	return out, err
}

func (tc *TestimonialController) List(c *fiber.Ctx) error {
	page, err := helper.PaginateQuery[model.TestimonialModel](
		c.UserContext(), tc.DB.Model(&model.TestimonialModel{}),
		TestimonialOrder, helper.PerPageAdmin, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list testimonials")
	}
	return helper.RenderAdmin(c, "admin/testimonials/list", fiber.Map{
		"Title":  "Testimonials",
		"Active": "testimonials",
		"Page":   page,
	})
}

func (tc *TestimonialController) CreatePage(c *fiber.Ctx) error {
	item := &model.TestimonialModel{
		TestimonialRating:     model.DefaultTestimonialRating,
		TestimonialIsApproved: true,
	}
	return tc.renderForm(c, item, false, "")
}

func (tc *TestimonialController) Create(c *fiber.Ctx) error {
	item := &model.TestimonialModel{TestimonialRating: model.DefaultTestimonialRating, TestimonialIsApproved: true}
	return tc.save(c, item, false)
}

func (tc *TestimonialController) EditPage(c *fiber.Ctx) error {
	item, err := tc.load(c)
	if err != nil {
		return err
	}
	return tc.renderForm(c, item, true, "")
}

func (tc *TestimonialController) Update(c *fiber.Ctx) error {
	item, err := tc.load(c)
	if err != nil {
		return err
	}
	return tc.save(c, item, true)
}

func (tc *TestimonialController) Delete(c *fiber.Ctx) error {
	item, err := tc.load(c)
	if err != nil {
		return err
	}
	if err := tc.DB.WithContext(c.UserContext()).Delete(item).Error; err != nil {
		return helper.FromDBError(err, "delete testimonial")
	}
	return helper.RedirectSuccess(c, testimonialListPath, "Testimonial deleted.")
}

// save: bind + upload + persist, dipakai create & edit.
func (tc *TestimonialController) save(c *fiber.Ctx, item *model.TestimonialModel, isEdit bool) error {
	var req dto.TestimonialRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return tc.renderForm(c, item, isEdit, msg)
	}
	req.IsApproved = helper.Checkbox(c, "is_approved")
	req.ApplyTo(item)

	var err error
	if item.TestimonialPhoto, err = tc.Media.ReplaceImage(c, "photo", helper.FolderTestimonials, item.TestimonialPhoto); err != nil {
		if helper.IsUploadError(err) {
			return tc.renderForm(c, item, isEdit, err.Error())
		}
		return err
	}

	db := tc.DB.WithContext(c.UserContext())
	if isEdit {
		err = db.Save(item).Error
	} else {
		err = db.Create(item).Error
	}
	if err != nil {
		return helper.FromDBError(err, "save testimonial")
	}
	tc.Images.OnPersisted(item)

	msg := "Testimonial added successfully."
	if isEdit {
		msg = "Testimonial updated successfully."
	}
	return helper.RedirectSuccess(c, testimonialListPath, msg)
}

func (tc *TestimonialController) load(c *fiber.Ctx) (*model.TestimonialModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	return helper.FindOr404[model.TestimonialModel](c, tc.DB, "testimonial_id", id)
}

func (tc *TestimonialController) renderForm(c *fiber.Ctx, item *model.TestimonialModel, isEdit bool, errMsg string) error {
	title := "Add Testimonial"
	if isEdit {
		title = "Edit Testimonial"
	}
	return helper.RenderAdmin(c, "admin/testimonials/form", fiber.Map{
		"Title":   title,
		"Active":  "testimonials",
		"Item":    item,
		"IsEdit":  isEdit,
		"Error":   errMsg,
		"Ratings": []int{5, 4, 3, 2, 1},
	})
}
