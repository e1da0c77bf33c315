package dictapimodels

import (
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type EmployeeGroupData struct {
	Name     string       `json:"name" validate:"notblank,max=255"`
	Abbr     string       `json:"abbr" validate:"notblank,max=20"`
	Teachers models.YesNo `json:"teachers" validate:"omitempty,oneof=Y N"`
}

func (r EmployeeGroupData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type EmployeeGroupView struct {
	EmployeeGroupData
	ID    string `json:"id"`
	Label string `json:"label"`
}

func EmployeeGroupConvert(rec dbmodels.EmployeeGroup) EmployeeGroupView {
	return EmployeeGroupView{
		EmployeeGroupData: EmployeeGroupData{
			Name:     rec.Name,
			Abbr:     rec.Abbr,
			Teachers: rec.Teachers,
		},
		ID:    rec.ID,
		Label: rec.String(),
	}
}
