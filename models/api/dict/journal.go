package dictapimodels

import (
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type JournalData struct {
	PublisherID  *string `json:"publisher_id" validate:"omitempty,id"`
	Title        string  `json:"title" validate:"notblank,max=255"`
	Abbr         string  `json:"abbr" validate:"notblank,max=255"`
	ImpactFactor float64 `json:"impact_factor" validate:"gte=0"`
	Rating       int     `json:"rating" validate:"gte=0"`
	AncestorID   *string `json:"ancestor_id" validate:"omitempty,id"`
}

func (r JournalData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type JournalView struct {
	JournalData
	ID            string `json:"id"`
	PublisherName string `json:"publisher_name,omitempty"`
	AncestorTitle string `json:"ancestor_title,omitempty"`
	Label         string `json:"label"`
}

func JournalConvert(rec dbmodels.Journal) JournalView {
	result := JournalView{
		JournalData: JournalData{
			PublisherID:  rec.PublisherID,
			Title:        rec.Title,
			Abbr:         rec.Abbr,
			ImpactFactor: rec.ImpactFactor,
			Rating:       rec.Rating,
			AncestorID:   rec.AncestorID,
		},
		ID:    rec.ID,
		Label: rec.String(),
	}
	if rec.Publisher != nil {
		result.PublisherName = rec.Publisher.String()
	}
	if rec.Ancestor != nil {
		result.AncestorTitle = rec.Ancestor.String()
	}
	return result
}

type JournalFilter struct {
	DictFilter
	PublisherID string `json:"publisher_id" query:"publisher_id" validate:"id"`
}

func (r JournalFilter) Validate() error {
	return apimodels.ValidateStruct(r)
}

// RatingOptions lists the accepted journal ratings.
func RatingOptions() []int {
	return append([]int{}, models.JournalRatingPoints...)
}
