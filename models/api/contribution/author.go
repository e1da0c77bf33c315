package contributionapimodels

import (
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type AuthorData struct {
	EmployeeID *string `json:"employee_id" validate:"omitempty,id"`
	Alias      string  `json:"alias" validate:"max=255"`
}

func (r AuthorData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type AuthorFilter struct {
	Search string             `json:"search" query:"search"`
	Group  models.AuthorGroup `json:"group" query:"group" validate:"omitempty,oneof=E A"`
}

func (r AuthorFilter) Validate() error {
	return apimodels.ValidateStruct(r)
}

type AuthorView struct {
	ID         string             `json:"id"`
	Label      string             `json:"label"`
	EmployeeID *string            `json:"employee_id"`
	Employee   string             `json:"employee,omitempty"`
	Alias      string             `json:"alias"`
	Group      models.AuthorGroup `json:"group"`
	GroupLabel string             `json:"group_label"`
}

func AuthorConvert(rec dbmodels.Author) AuthorView {
	result := AuthorView{
		ID:         rec.ID,
		Label:      rec.String(),
		EmployeeID: rec.EmployeeID,
		Alias:      rec.Alias,
		Group:      rec.Group(),
		GroupLabel: rec.Group().ToHuman(),
	}
	if rec.Employee != nil {
		result.Employee = rec.Employee.String()
	}
	return result
}
