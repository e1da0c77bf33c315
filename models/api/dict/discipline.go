package dictapimodels

import (
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type DisciplineData struct {
	Name   string                  `json:"name" validate:"notblank,max=255"`
	Abbr   string                  `json:"abbr" validate:"notblank,max=2"`
	Domain models.DisciplineDomain `json:"domain" validate:"omitempty,oneof=SCI ENG"`
}

func (r DisciplineData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type DisciplineView struct {
	DisciplineData
	ID          string `json:"id"`
	DomainLabel string `json:"domain_label"`
	Label       string `json:"label"`
}

func DisciplineConvert(rec dbmodels.Discipline) DisciplineView {
	return DisciplineView{
		DisciplineData: DisciplineData{
			Name:   rec.Name,
			Abbr:   rec.Abbr,
			Domain: rec.Domain,
		},
		ID:          rec.ID,
		DomainLabel: rec.Domain.ToHuman(),
		Label:       rec.String(),
	}
}
