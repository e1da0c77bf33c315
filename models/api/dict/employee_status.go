package dictapimodels

import (
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type EmployeeStatusData struct {
	Name string `json:"name" validate:"notblank,max=255"`
	Abbr string `json:"abbr" validate:"notblank,max=2"`
}

func (r EmployeeStatusData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type EmployeeStatusView struct {
	EmployeeStatusData
	ID    string `json:"id"`
	Label string `json:"label"`
}

func EmployeeStatusConvert(rec dbmodels.EmployeeStatus) EmployeeStatusView {
	return EmployeeStatusView{
		EmployeeStatusData: EmployeeStatusData{
			Name: rec.Name,
			Abbr: rec.Abbr,
		},
		ID:    rec.ID,
		Label: rec.String(),
	}
}
