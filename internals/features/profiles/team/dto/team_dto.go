package dto

import (
	"strings"

	"darulfatheh_backend/internals/features/profiles/team/model"
)

type TeamRequest struct {
	Name     string `form:"name" validate:"required,max=100"`
	Position string `form:"position" validate:"required,max=100"`
	Bio      string `form:"bio"`
	Order    int    `form:"order" validate:"gte=0"`
}

// ApplyTo menyalin field form ke model (foto diurus controller).
func (r *TeamRequest) ApplyTo(m *model.ManagementTeamModel) {
	m.TeamName = strings.TrimSpace(r.Name)
	m.TeamPosition = strings.TrimSpace(r.Position)
	m.TeamBio = strings.TrimSpace(r.Bio)
	m.TeamOrder = r.Order
}
