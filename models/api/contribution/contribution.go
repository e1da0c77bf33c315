package contributionapimodels

import (
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type ContributionData struct {
	ContentType    models.ElementKind `json:"content_type" validate:"required,oneof=article patent project"`
	ContentID      string             `json:"content_id" validate:"required,id"`
	AuthorID       string             `json:"author_id" validate:"required,id"`
	Percentage     int                `json:"percentage" validate:"gte=0,lte=100"`
	AuthorStatusID *string            `json:"author_status_id" validate:"omitempty,id"`
}

func (r ContributionData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ContributionFilter struct {
	apimodels.Pagination
	ContentType models.ElementKind `json:"content_type" query:"content_type" validate:"omitempty,oneof=article patent project"`
	ContentID   string             `json:"content_id" query:"content_id" validate:"id"`
	AuthorID    string             `json:"author_id" query:"author_id" validate:"id"`
	EmployeeID  string             `json:"employee_id" query:"employee_id" validate:"id"`
	Approved    string             `json:"approved" query:"approved" validate:"omitempty,oneof=true false"`
}

func (r ContributionFilter) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ContributionView struct {
	ID             string             `json:"id"`
	Label          string             `json:"label"`
	ContentType    models.ElementKind `json:"content_type"`
	ContentLabel   string             `json:"content_label"`
	ContentID      string             `json:"content_id"`
	Element        string             `json:"element"`
	AuthorID       string             `json:"author_id"`
	Author         string             `json:"author"`
	AuthorGroup    models.AuthorGroup `json:"author_group"`
	Percentage     int                `json:"percentage"`
	AuthorStatusID *string            `json:"author_status_id"`
	AuthorStatus   string             `json:"author_status,omitempty"`
	ByEmployee     bool               `json:"by_employee"`
	Approved       bool               `json:"approved"`
}

// ContributionConvert takes the element title resolved by the caller.
func ContributionConvert(rec dbmodels.Contribution, elementTitle string) ContributionView {
	result := ContributionView{
		ID:             rec.ID,
		Label:          rec.String(),
		ContentType:    rec.Kind(),
		ContentLabel:   rec.Kind().ToHuman(),
		ContentID:      rec.ContentID,
		Element:        elementTitle,
		AuthorID:       rec.AuthorID,
		Percentage:     rec.Percentage,
		AuthorStatusID: rec.AuthorStatusID,
		ByEmployee:     rec.ByEmployee(),
		Approved:       rec.Approved,
	}
	if rec.Author != nil {
		result.Author = rec.Author.String()
		result.AuthorGroup = rec.Author.Group()
	}
	if rec.AuthorStatus != nil {
		result.AuthorStatus = rec.AuthorStatus.ShortString()
	}
	return result
}
