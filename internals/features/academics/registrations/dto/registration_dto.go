package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"darulfatheh_backend/internals/features/academics/registrations/model"
	helper "darulfatheh_backend/internals/helpers"
)

type RegistrationRequest struct {
	FirstName   string `form:"first_name" validate:"required,max=100"`
	LastName    string `form:"last_name" validate:"required,max=100"`
	DOB         string `form:"dob" validate:"required,datetime=2006-01-02"`
	Email       string `form:"email" validate:"required,email,max=254"`
	Mobile      string `form:"mobile" validate:"required,max=20"`
	Course      string `form:"course" validate:"omitempty,uuid"`
	ProgramName string `form:"program_name" validate:"max=200"`
}

// ToModel: course diisi controller setelah dicek keberadaannya.
func (r *RegistrationRequest) ToModel() *model.StudentRegistrationModel {
	m := &model.StudentRegistrationModel{
		RegistrationFirstName:   strings.TrimSpace(r.FirstName),
		RegistrationLastName:    strings.TrimSpace(r.LastName),
		RegistrationEmail:       strings.TrimSpace(r.Email),
		RegistrationMobile:      strings.TrimSpace(r.Mobile),
		RegistrationProgramName: strings.TrimSpace(r.ProgramName),
	}
	if d, err := time.Parse(helper.DateLayout, strings.TrimSpace(r.DOB)); err == nil {
		m.RegistrationDOB = datatypes.Date(d)
	}
	return m
}
