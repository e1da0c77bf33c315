package approvalapimodels

import (
	"time"

	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

type ApprovalRequest struct {
	IDs     []string `json:"ids" validate:"required,min=1,dive,uuid"`
	Comment string   `json:"comment" validate:"max=1000"`
}

func (r ApprovalRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ApprovalFilter struct {
	apimodels.Pagination
	Approved string `json:"approved" query:"approved" validate:"omitempty,oneof=true false"`
}

func (r ApprovalFilter) Validate() error {
	return apimodels.ValidateStruct(r)
}

// ApprovalRecord is a record of any approvable kind reduced to its label.
type ApprovalRecord struct {
	ID        string
	Label     string
	Approved  bool
	UpdatedAt time.Time
}

type ApprovalRecordView struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Approved  bool      `json:"approved"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ApprovalRecordConvert(rec ApprovalRecord) ApprovalRecordView {
	return ApprovalRecordView(rec)
}

type ApprovalHistoryView struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Approved  bool      `json:"approved"`
	UserID    *string   `json:"user_id"`
	User      string    `json:"user"`
	Comment   string    `json:"comment"`
}

func ApprovalHistoryConvert(rec dbmodels.ApprovalHistory) ApprovalHistoryView {
	result := ApprovalHistoryView{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Approved:  rec.Approved,
		UserID:    rec.UserID,
		Comment:   rec.Comment,
	}
	if rec.User != nil {
		result.User = rec.User.Username
	}
	return result
}
