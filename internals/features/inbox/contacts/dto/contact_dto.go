package dto

import (
	"strings"

	"darulfatheh_backend/internals/features/inbox/contacts/model"
)

// ContactRequest: template lama memakai "username" untuk nama pengirim.
type ContactRequest struct {
	Name     string `form:"name"`
	Username string `form:"username"`
	Email    string `form:"email" validate:"required,email,max=254"`
	Phone    string `form:"phone" validate:"max=20"`
	Subject  string `form:"subject" validate:"required,max=200"`
	Message  string `form:"message" validate:"required"`
}

func (r *ContactRequest) SenderName() string {
	if n := strings.TrimSpace(r.Username); n != "" {
		return n
	}
	return strings.TrimSpace(r.Name)
}

func (r *ContactRequest) ToModel() *model.ContactMessageModel {
	return &model.ContactMessageModel{
		MessageName:    r.SenderName(),
		MessageEmail:   strings.TrimSpace(r.Email),
		MessagePhone:   strings.TrimSpace(r.Phone),
		MessageSubject: strings.TrimSpace(r.Subject),
		MessageBody:    strings.TrimSpace(r.Message),
	}
}
