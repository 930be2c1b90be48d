package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"darulfatheh_backend/internals/helpers/imageopt"
)

// =========================
// Alumni profile
// =========================
type AlumniProfileModel struct {
	AlumniID          uuid.UUID `gorm:"column:alumni_id;type:uuid;primaryKey" json:"alumni_id"`
	AlumniName        string    `gorm:"column:alumni_name;type:varchar(100);not null" json:"alumni_name"`
	AlumniPhoto       string    `gorm:"column:alumni_photo;type:varchar(255);not null" json:"alumni_photo"`
	AlumniDescription string    `gorm:"column:alumni_description;type:text;not null" json:"alumni_description"`
	AlumniCreatedAt   time.Time `gorm:"column:alumni_created_at;autoCreateTime" json:"alumni_created_at"`
}

func (AlumniProfileModel) TableName() string {
	return "alumni_profiles"
}

func (m *AlumniProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.AlumniID == uuid.Nil {
		m.AlumniID = uuid.New()
	}
	return nil
}

func (m *AlumniProfileModel) ImageAttributes() []imageopt.ImageAttribute {
	return []imageopt.ImageAttribute{{Name: "photo", Path: m.AlumniPhoto}}
}

// =========================
// Alumni event
// =========================
type AlumniEventModel struct {
	EventID          uuid.UUID      `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	EventName        string         `gorm:"column:event_name;type:varchar(200);not null" json:"event_name"`
	EventImage       string         `gorm:"column:event_image;type:varchar(255);not null" json:"event_image"`
	EventDate        datatypes.Date `gorm:"column:event_date;not null" json:"event_date"`
	EventDescription string         `gorm:"column:event_description;type:text;not null" json:"event_description"`
	EventIsVisible   bool           `gorm:"column:event_is_visible;not null" json:"event_is_visible"`
	EventCreatedAt   time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
}

func (AlumniEventModel) TableName() string {
	return "alumni_events"
}

func (m *AlumniEventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}

func (m *AlumniEventModel) ImageAttributes() []imageopt.ImageAttribute {
	return []imageopt.ImageAttribute{{Name: "image", Path: m.EventImage}}
}
