package dictapimodels

import (
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type AcademicDegreeData struct {
	Name string `json:"name" validate:"notblank,max=255"`
}

func (r AcademicDegreeData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type AcademicDegreeView struct {
	AcademicDegreeData
	ID string `json:"id"`
}

func AcademicDegreeConvert(rec dbmodels.AcademicDegree) AcademicDegreeView {
	return AcademicDegreeView{
		AcademicDegreeData: AcademicDegreeData{
			Name: rec.Name,
		},
		ID: rec.ID,
	}
}
