package dbmodels

import "academic-records-backend/models"

type ApprovalHistory struct {
	BaseModel
	Kind     models.ApprovalKind `gorm:"type:varchar(16);index:idx_approval_record"`
	RecordID string              `gorm:"type:uuid;index:idx_approval_record"`
	Approved bool
	UserID   *string       `gorm:"type:uuid"`
	User     *User         `gorm:"constraint:OnDelete:SET NULL"`
	Comment  string        `gorm:"type:text"`
	Changes  EntityChanges `gorm:"type:jsonb"`
}
