package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminUserModel struct {
	AdminID           uuid.UUID  `gorm:"column:admin_id;type:uuid;primaryKey" json:"admin_id"`
	AdminUsername     string     `gorm:"column:admin_username;type:varchar(150);not null;uniqueIndex:uq_admin_users_username" json:"admin_username"`
	AdminPasswordHash string     `gorm:"column:admin_password_hash;type:varchar(255);not null" json:"-"`
	AdminIsActive     bool       `gorm:"column:admin_is_active;not null" json:"admin_is_active"`
	AdminLastLoginAt  *time.Time `gorm:"column:admin_last_login_at" json:"admin_last_login_at"`
	AdminCreatedAt    time.Time  `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}

func (m *AdminUserModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminID == uuid.Nil {
		m.AdminID = uuid.New()
	}
	return nil
}
