package dictapimodels

import (
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type PositionData struct {
	Name     string   `json:"name" validate:"notblank,max=255"`
	GroupIDs []string `json:"group_ids" validate:"dive,id"`
}

func (r PositionData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type PositionView struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	IsTeacher bool                `json:"is_teacher"`
	Groups    []EmployeeGroupView `json:"groups"`
}

func PositionConvert(rec dbmodels.Position) PositionView {
	result := PositionView{
		ID:        rec.ID,
		Name:      rec.Name,
		IsTeacher: rec.IsTeacher(),
		Groups:    make([]EmployeeGroupView, 0, len(rec.Groups)),
	}
	for _, group := range rec.Groups {
		result.Groups = append(result.Groups, EmployeeGroupConvert(group))
	}
	return result
}
