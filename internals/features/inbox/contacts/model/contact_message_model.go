package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessageModel struct {
	MessageID        uuid.UUID `gorm:"column:message_id;type:uuid;primaryKey" json:"message_id"`
	MessageName      string    `gorm:"column:message_name;type:varchar(200);not null" json:"message_name"`
	MessageEmail     string    `gorm:"column:message_email;type:varchar(254);not null" json:"message_email"`
	MessagePhone     string    `gorm:"column:message_phone;type:varchar(20)" json:"message_phone"`
	MessageSubject   string    `gorm:"column:message_subject;type:varchar(200);not null" json:"message_subject"`
	MessageBody      string    `gorm:"column:message_body;type:text;not null" json:"message_body"`
	MessageIsRead    bool      `gorm:"column:message_is_read;not null" json:"message_is_read"`
	MessageCreatedAt time.Time `gorm:"column:message_created_at;autoCreateTime" json:"message_created_at"`
}

func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

func (m *ContactMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.MessageID == uuid.Nil {
		m.MessageID = uuid.New()
	}
	return nil
}
