package store

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"academic-records-backend/lib/utils/helpers"
	employeeapimodels "academic-records-backend/models/api/employee"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employment) (id string, err error)
	GetByID(id string) (rec *dbmodels.Employment, err error)
	List(filter employeeapimodels.EmploymentFilter, today time.Time) (list []dbmodels.Employment, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
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

func (i impl) Create(rec dbmodels.Employment) (id string, err error) {
	err = i.db.
		Omit("Employee", "Position", "Group", "Department").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Employment, error) {
	rec := dbmodels.Employment{}
	err := preload(i.db).
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

func (i impl) List(filter employeeapimodels.EmploymentFilter, today time.Time) (list []dbmodels.Employment, err error) {
	list = []dbmodels.Employment{}
	tx := i.db.Model(&dbmodels.Employment{})
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.DepartmentID != "" {
		tx = tx.Where("department_id = ?", filter.DepartmentID)
	}
	if active := helpers.ParseBoolFilter(filter.Active); active != nil {
		cond := "(since_date IS NULL OR since_date <= @day) AND (until_date IS NULL OR until_date >= @day)"
		if !*active {
			cond = "NOT (" + cond + ")"
		}
		tx = tx.Where(cond, map[string]interface{}{"day": today})
	}
	err = preload(tx).
		Order("since_date DESC NULLS LAST").
		Find(&list).
		Error
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
		Model(&dbmodels.Employment{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Employment{}).
		Error
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

func preload(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Employee.User").
		Preload("Employee.AcademicDegree").
		Preload("Position.Groups").
		Preload("Group").
		Preload("Department.Ancestor.Ancestor")
}
