package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Discipline) (id string, err error)
	GetByID(id string) (rec *dbmodels.Discipline, err error)
	List(search string) (list []dbmodels.Discipline, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Discipline) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Discipline, error) {
	rec := dbmodels.Discipline{}
	err := i.db.
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

func (i impl) List(search string) (list []dbmodels.Discipline, err error) {
	list = []dbmodels.Discipline{}
	tx := i.db.Model(&dbmodels.Discipline{})
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(abbr) LIKE ?", like, like)
	}
	err = tx.Order("name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Discipline{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Discipline{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
