package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Position) (id string, err error)
	GetByID(id string) (rec *dbmodels.Position, err error)
	List(search string) (list []dbmodels.Position, err error)
	Update(rec dbmodels.Position) error
	Delete(id string) error
	GetGroups(ids []string) (list []dbmodels.EmployeeGroup, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Position) (id string, err error) {
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Omit("Groups.*").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Position, error) {
	rec := dbmodels.Position{}
	err := i.db.
		Preload("Groups").
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

func (i impl) List(search string) (list []dbmodels.Position, err error) {
	list = []dbmodels.Position{}
	tx := i.db.Model(&dbmodels.Position{}).Preload("Groups")
	if search = strings.TrimSpace(search); search != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	err = tx.Order("name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Update saves the name and replaces the groups of the position.
func (i impl) Update(rec dbmodels.Position) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.Position{}).
			Where("id = ?", rec.ID).
			Update("name", rec.Name).
			Error
		if err != nil {
			return err
		}
		return tx.
			Model(&rec).
			Omit("Groups.*").
			Association("Groups").
			Replace(rec.Groups)
	})
}

func (i impl) Delete(id string) error {
	return i.db.
		Select("Groups").
		Delete(&dbmodels.Position{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
}

func (i impl) GetGroups(ids []string) (list []dbmodels.EmployeeGroup, err error) {
	list = []dbmodels.EmployeeGroup{}
	if len(ids) == 0 {
		return list, nil
	}
	err = i.db.
		Where("id IN ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
