package dbmodels

type ArchiveKind string

const (
	ArchiveUsersLoad           ArchiveKind = "users-load"
	ArchiveEmployeesExport     ArchiveKind = "employees-export"
	ArchiveContributionsExport ArchiveKind = "contributions-export"
	ArchiveEmployeeSheet       ArchiveKind = "employee-sheet"
)

// ArchivedFile registers an object kept in the storage bucket.
type ArchivedFile struct {
	BaseModel
	Kind        ArchiveKind `gorm:"type:varchar(32);index"`
	ObjectName  string      `gorm:"type:varchar(255);uniqueIndex"`
	FileName    string      `gorm:"type:varchar(255)"`
	ContentType string      `gorm:"type:varchar(255)"`
	Size        int64
	UserID      *string `gorm:"type:uuid"`
	User        *User   `gorm:"constraint:OnDelete:SET NULL"`
}
