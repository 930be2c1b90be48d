package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ManagementTeamModel struct {
	TeamID        uuid.UUID `gorm:"column:team_id;type:uuid;primaryKey" json:"team_id"`
	TeamName      string    `gorm:"column:team_name;type:varchar(100);not null" json:"team_name"`
	TeamPosition  string    `gorm:"column:team_position;type:varchar(100);not null" json:"team_position"`
	TeamBio       string    `gorm:"column:team_bio;type:text" json:"team_bio"`
	TeamPhoto     string    `gorm:"column:team_photo;type:varchar(255)" json:"team_photo"`
	TeamOrder     int       `gorm:"column:team_order;not null" json:"team_order"`
	TeamCreatedAt time.Time `gorm:"column:team_created_at;autoCreateTime" json:"team_created_at"`
}

func (ManagementTeamModel) TableName() string {
	return "management_team"
}

func (m *ManagementTeamModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeamID == uuid.Nil {
		m.TeamID = uuid.New()
	}
	return nil
}
