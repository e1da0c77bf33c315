package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.ArchivedFile) (id string, err error)
	GetByID(id string) (rec *dbmodels.ArchivedFile, err error)
	List(kind dbmodels.ArchiveKind) (list []dbmodels.ArchivedFile, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.ArchivedFile) (id string, err error) {
	err = i.db.
		Omit("User").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ArchivedFile, error) {
	rec := dbmodels.ArchivedFile{}
	err := i.db.
		Preload("User").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(kind dbmodels.ArchiveKind) (list []dbmodels.ArchivedFile, err error) {
	list = []dbmodels.ArchivedFile{}
	tx := i.db.Model(&dbmodels.ArchivedFile{}).Preload("User")
	if kind != "" {
		tx = tx.Where("kind = ?", kind)
	}
	err = tx.
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
