package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/features/inbox/contacts/dto"
	"darulfatheh_backend/internals/features/inbox/contacts/model"
	helper "darulfatheh_backend/internals/helpers"
)

const (
	messageListPath = "/dashboard/messages/"
	contactPath     = "/contact/"

	MsgContactSent = "Thank you! Your message has been sent. We will get back to you soon."
)

var MessageOrder = []helper.SortKey{helper.Desc("message_created_at")}

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// =============================
// 🌐 Public: /contact/
// =============================
func (cc *ContactController) ContactPage(c *fiber.Ctx) error {
	return helper.RenderPublic(c, "public/contact", fiber.Map{"Title": "Contact Us"})
}

func (cc *ContactController) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	msg := helper.BindForm(c, &req)
	if msg == "" && req.SenderName() == "" {
		msg = "name is required"
	}
	if msg != "" {
		return helper.RenderPublic(c, "public/contact", fiber.Map{"Title": "Contact Us", "Error": msg})
	}
	if err := cc.DB.WithContext(c.UserContext()).Create(req.ToModel()).Error; err != nil {
		return helper.FromDBError(err, "create contact message")
	}
	return helper.RedirectSuccess(c, contactPath, MsgContactSent)
}

// =============================
// 📥 Admin inbox
// =============================
func (cc *ContactController) List(c *fiber.Ctx) error {
	page, err := helper.PaginateQuery[model.ContactMessageModel](
		c.UserContext(), cc.DB.Model(&model.ContactMessageModel{}),
		MessageOrder, helper.PerPageAdmin, c.Query(helper.DefaultPageParam),
	)
	if err != nil {
		return helper.FromDBError(err, "list messages")
	}
	return helper.RenderAdmin(c, "admin/messages/list", fiber.Map{
		"Title":  "Messages",
		"Active": "messages",
		"Page":   page,
	})
}

// View menandai pesan sudah dibaca.
func (cc *ContactController) View(c *fiber.Ctx) error {
	item, err := cc.load(c)
	if err != nil {
		return err
	}
	if !item.MessageIsRead {
		if err := cc.DB.WithContext(c.UserContext()).Model(item).
			Update("message_is_read", true).Error; err != nil {
			return helper.FromDBError(err, "mark message read")
		}
		item.MessageIsRead = true
	}
	return helper.RenderAdmin(c, "admin/messages/detail", fiber.Map{
		"Title":   item.MessageSubject,
		"Active":  "messages",
		"Message": item,
	})
}

func (cc *ContactController) Delete(c *fiber.Ctx) error {
	item, err := cc.load(c)
	if err != nil {
		return err
	}
	if err := cc.DB.WithContext(c.UserContext()).Delete(item).Error; err != nil {
		return helper.FromDBError(err, "delete message")
	}
	return helper.RedirectSuccess(c, messageListPath, "Message deleted successfully!")
}

func (cc *ContactController) load(c *fiber.Ctx) (*model.ContactMessageModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	return helper.FindOr404[model.ContactMessageModel](c, cc.DB, "message_id", id)
}
