package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EmployeeStatus) (id string, err error)
	GetByID(id string) (rec *dbmodels.EmployeeStatus, err error)
	List(search string) (list []dbmodels.EmployeeStatus, err error)
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

func (i impl) Create(rec dbmodels.EmployeeStatus) (id string, err error) {
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

func (i impl) GetByID(id string) (*dbmodels.EmployeeStatus, error) {
	rec := dbmodels.EmployeeStatus{}
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

func (i impl) List(search string) (list []dbmodels.EmployeeStatus, err error) {
	list = []dbmodels.EmployeeStatus{}
	tx := i.db.Model(&dbmodels.EmployeeStatus{})
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
		Model(&dbmodels.EmployeeStatus{}).
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
		Delete(&dbmodels.EmployeeStatus{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
