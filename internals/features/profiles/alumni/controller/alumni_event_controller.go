package controller

import (
	"github.com/gofiber/fiber/v2"

	"darulfatheh_backend/internals/features/profiles/alumni/dto"
	"darulfatheh_backend/internals/features/profiles/alumni/model"
	helper "darulfatheh_backend/internals/helpers"
)

const alumniEventListPath = "/dashboard/alumni-events/"

// =============================
// 📅 Alumni events (admin)
// =============================
func (ac *AlumniController) ListEvents(c *fiber.Ctx) error {
	page, err := helper.PaginateQuery[model.AlumniEventModel](
		c.UserContext(), ac.DB.Model(&model.AlumniEventModel{}),
		AlumniEventOrder, helper.PerPageAdmin, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list alumni events")
	}
	return helper.RenderAdmin(c, "admin/alumni-events/list", fiber.Map{
		"Title":  "Alumni Events",
		"Active": "alumni-events",
		"Page":   page,
	})
}

func (ac *AlumniController) CreateEventPage(c *fiber.Ctx) error {
	return ac.renderEventForm(c, &model.AlumniEventModel{EventIsVisible: true}, false, "")
}

func (ac *AlumniController) CreateEvent(c *fiber.Ctx) error {
	item := &model.AlumniEventModel{}
	var req dto.AlumniEventRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return ac.renderEventForm(c, item, false, msg)
	}
	req.IsVisible = helper.Checkbox(c, "is_visible")
	req.ApplyTo(item)

	fh := helper.OptionalFile(c, "image")
	if fh == nil {
		return ac.renderEventForm(c, item, false, "image is required")
	}
	img, err := ac.Media.SaveImage(fh, helper.FolderAlumniEvents)
	if err != nil {
		if helper.IsUploadError(err) {
			return ac.renderEventForm(c, item, false, err.Error())
		}
		return err
	}
	item.EventImage = img

	if err := ac.DB.WithContext(c.UserContext()).Create(item).Error; err != nil {
		return helper.FromDBError(err, "create alumni event")
	}
	ac.Images.OnPersisted(item)
	return helper.RedirectSuccess(c, alumniEventListPath, "Alumni Event added successfully!")
}

func (ac *AlumniController) EditEventPage(c *fiber.Ctx) error {
	item, err := ac.loadEvent(c)
	if err != nil {
		return err
	}
	return ac.renderEventForm(c, item, true, "")
}

func (ac *AlumniController) UpdateEvent(c *fiber.Ctx) error {
	item, err := ac.loadEvent(c)
	if err != nil {
		return err
	}
	var req dto.AlumniEventRequest
	if msg := helper.BindForm(c, &req); msg != "" {
		return ac.renderEventForm(c, item, true, msg)
	}
	req.IsVisible = helper.Checkbox(c, "is_visible")
	req.ApplyTo(item)

	if item.EventImage, err = ac.Media.ReplaceImage(c, "image", helper.FolderAlumniEvents, item.EventImage); err != nil {
		if helper.IsUploadError(err) {
			return ac.renderEventForm(c, item, true, err.Error())
		}
		return err
	}
	if err := ac.DB.WithContext(c.UserContext()).Save(item).Error; err != nil {
		return helper.FromDBError(err, "update alumni event")
	}
	ac.Images.OnPersisted(item)
	return helper.RedirectSuccess(c, alumniEventListPath, "Alumni Event updated successfully!")
}

func (ac *AlumniController) DeleteEvent(c *fiber.Ctx) error {
	item, err := ac.loadEvent(c)
	if err != nil {
		return err
	}
	if err := ac.DB.WithContext(c.UserContext()).Delete(item).Error; err != nil {
		return helper.FromDBError(err, "delete alumni event")
	}
	return helper.RedirectSuccess(c, alumniEventListPath, "Alumni Event deleted successfully!")
}

func (ac *AlumniController) loadEvent(c *fiber.Ctx) (*model.AlumniEventModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	return helper.FindOr404[model.AlumniEventModel](c, ac.DB, "event_id", id)
}

func (ac *AlumniController) renderEventForm(c *fiber.Ctx, item *model.AlumniEventModel, isEdit bool, errMsg string) error {
	title := "Add Alumni Event"
	if isEdit {
		title = "Edit Alumni Event"
	}
	return helper.RenderAdmin(c, "admin/alumni-events/form", fiber.Map{
		"Title":  title,
		"Active": "alumni-events",
		"Item":   item,
		"IsEdit": isEdit,
		"Error":  errMsg,
	})
}
