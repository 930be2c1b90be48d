package dto

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"darulfatheh_backend/internals/features/profiles/alumni/model"
	helper "darulfatheh_backend/internals/helpers"
)

type AlumniProfileRequest struct {
	Name        string `form:"name" validate:"required,max=100"`
	Description string `form:"description" validate:"required"`
}

func (r *AlumniProfileRequest) ApplyTo(m *model.AlumniProfileModel) {
	m.AlumniName = strings.TrimSpace(r.Name)
	m.AlumniDescription = strings.TrimSpace(r.Description)
}

type AlumniEventRequest struct {
	EventName   string `form:"event_name" validate:"required,max=200"`
	Date        string `form:"date" validate:"required,datetime=2006-01-02"`
	Description string `form:"description" validate:"required"`
	IsVisible   bool   `form:"-"`
}

// ApplyTo: Date sudah lolos validasi datetime.
func (r *AlumniEventRequest) ApplyTo(m *model.AlumniEventModel) {
	m.EventName = strings.TrimSpace(r.EventName)
	m.EventDescription = strings.TrimSpace(r.Description)
	m.EventIsVisible = r.IsVisible
	if d, err := time.Parse(helper.DateLayout, strings.TrimSpace(r.Date)); err == nil {
		m.EventDate = datatypes.Date(d)
	}
}
