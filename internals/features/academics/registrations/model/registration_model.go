package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	courseModel "darulfatheh_backend/internals/features/academics/courses/model"
)

type StudentRegistrationModel struct {
	RegistrationID          uuid.UUID      `gorm:"column:registration_id;type:uuid;primaryKey" json:"registration_id"`
	RegistrationFirstName   string         `gorm:"column:registration_first_name;type:varchar(100);not null" json:"registration_first_name"`
	RegistrationLastName    string         `gorm:"column:registration_last_name;type:varchar(100);not null" json:"registration_last_name"`
	RegistrationDOB         datatypes.Date `gorm:"column:registration_dob;not null" json:"registration_dob"`
	RegistrationEmail       string         `gorm:"column:registration_email;type:varchar(254);not null" json:"registration_email"`
	RegistrationMobile      string         `gorm:"column:registration_mobile;type:varchar(20);not null" json:"registration_mobile"`
	RegistrationCourseID    *uuid.UUID     `gorm:"column:registration_course_id;type:uuid;index" json:"registration_course_id"`
	RegistrationProgramName string         `gorm:"column:registration_program_name;type:varchar(200)" json:"registration_program_name"`
	RegistrationCreatedAt   time.Time      `gorm:"column:registration_created_at;autoCreateTime" json:"registration_created_at"`

	Course *courseModel.CourseModel `gorm:"foreignKey:RegistrationCourseID;references:CourseID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"course,omitempty"`
}

func (StudentRegistrationModel) TableName() string {
	return "student_registrations"
}

func (m *StudentRegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if m.RegistrationID == uuid.Nil {
		m.RegistrationID = uuid.New()
	}
	return nil
}

func (m *StudentRegistrationModel) FullName() string {
	return m.RegistrationFirstName + " " + m.RegistrationLastName
}
