package dictapimodels

import (
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type AuthorStatusData struct {
	Name    string             `json:"name" validate:"notblank,max=255"`
	Abbr    string             `json:"abbr" validate:"notblank,max=2"`
	Group   models.AuthorGroup `json:"group" validate:"required,oneof=E A"`
	Default models.YesNo       `json:"default" validate:"omitempty,oneof=Y N"`
}

func (r AuthorStatusData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type AuthorStatusView struct {
	AuthorStatusData
	ID         string `json:"id"`
	GroupLabel string `json:"group_label"`
	Label      string `json:"label"`
}

func AuthorStatusConvert(rec dbmodels.AuthorStatus) AuthorStatusView {
	return AuthorStatusView{
		AuthorStatusData: AuthorStatusData{
			Name:    rec.Name,
			Abbr:    rec.Abbr,
			Group:   rec.Group,
			Default: rec.Default,
		},
		ID:         rec.ID,
		GroupLabel: rec.Group.ToHuman(),
		Label:      rec.String(),
	}
}

type AuthorStatusFilter struct {
	DictFilter
	Group models.AuthorGroup `json:"group" query:"group" validate:"omitempty,oneof=E A"`
}

func (r AuthorStatusFilter) Validate() error {
	return apimodels.ValidateStruct(r)
}
