package dictapimodels

import (
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type PublisherData struct {
	Name string               `json:"name" validate:"notblank,max=255"`
	Abbr string               `json:"abbr" validate:"notblank,max=255"`
	Kind models.PublisherKind `json:"kind" validate:"required,oneof=F D"`
}

func (r PublisherData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type PublisherView struct {
	PublisherData
	ID        string `json:"id"`
	KindLabel string `json:"kind_label"`
	Label     string `json:"label"`
}

func PublisherConvert(rec dbmodels.Publisher) PublisherView {
	return PublisherView{
		PublisherData: PublisherData{
			Name: rec.Name,
			Abbr: rec.Abbr,
			Kind: rec.Kind,
		},
		ID:        rec.ID,
		KindLabel: rec.Kind.ToHuman(),
		Label:     rec.String(),
	}
}
