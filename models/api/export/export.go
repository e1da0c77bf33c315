package exportapimodels

import (
	"time"

	apimodels "academic-records-backend/models/api"
	dbmodels "academic-records-backend/models/db"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// File is a generated or archived document ready to be sent.
type File struct {
	Name        string
	ContentType string
	Data        []byte
	ArchiveID   string
}

type ArchiveFilter struct {
	Kind dbmodels.ArchiveKind `json:"kind" query:"kind" validate:"omitempty,oneof=users-load employees-export contributions-export employee-sheet"`
}

func (r ArchiveFilter) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ArchivedFileView struct {
	ID          string               `json:"id"`
	CreatedAt   time.Time            `json:"created_at"`
	Kind        dbmodels.ArchiveKind `json:"kind"`
	FileName    string               `json:"file_name"`
	ContentType string               `json:"content_type"`
	Size        int64                `json:"size"`
	User        string               `json:"user,omitempty"`
}

func ArchivedFileConvert(rec dbmodels.ArchivedFile) ArchivedFileView {
	result := ArchivedFileView{
		ID:          rec.ID,
		CreatedAt:   rec.CreatedAt,
		Kind:        rec.Kind,
		FileName:    rec.FileName,
		ContentType: rec.ContentType,
		Size:        rec.Size,
	}
	if rec.User != nil {
		result.User = rec.User.Username
	}
	return result
}
