package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"academic-records-backend/models"
	contributionapimodels "academic-records-backend/models/api/contribution"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Author) (id string, err error)
	GetByID(id string) (rec *dbmodels.Author, err error)
	List(filter contributionapimodels.AuthorFilter) (list []dbmodels.Author, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	// AliasTaken reports another author with the same employee (or none) and alias.
	AliasTaken(employeeID *string, alias, excludeID string) (bool, error)
	GetEmployee(id string) (rec *dbmodels.Employee, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Author) (id string, err error) {
	err = i.db.
		Omit("Employee").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Author, error) {
	rec := dbmodels.Author{}
	err := i.db.
		Preload("Employee.User").
		Preload("Employee.AcademicDegree").
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

func (i impl) List(filter contributionapimodels.AuthorFilter) (list []dbmodels.Author, err error) {
	list = []dbmodels.Author{}
	tx := i.db.
		Model(&dbmodels.Author{}).
		Preload("Employee.User").
		Preload("Employee.AcademicDegree")
	if search := strings.TrimSpace(filter.Search); search != "" {
		tx = tx.Where("LOWER(alias) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	switch filter.Group {
	case models.AuthorsEmployees:
		tx = tx.Where("employee_id IS NOT NULL")
	case models.AuthorsNotEmployees:
		tx = tx.Where("employee_id IS NULL")
	}
	err = tx.Order("alias").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Author{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Author{}).
		Error
}

// AliasTaken follows the (employee_id, alias) unique index: rows without an employee never collide.
func (i impl) AliasTaken(employeeID *string, alias, excludeID string) (bool, error) {
	if employeeID == nil {
		return false, nil
	}
	var count int64
	tx := i.db.Model(&dbmodels.Author{}).
		Where("alias = ?", alias).
		Where("employee_id = ?", *employeeID)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) GetEmployee(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Preload("User").
		Preload("AcademicDegree").
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
