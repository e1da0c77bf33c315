package store

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"academic-records-backend/lib/utils/helpers"
	employeeapimodels "academic-records-backend/models/api/employee"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (rec *dbmodels.Employee, err error)
	GetByUserID(userID string) (rec *dbmodels.Employee, err error)
	List(filter employeeapimodels.EmployeeFilter, today time.Time) (list []dbmodels.Employee, rowCount int64, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	OrcidTaken(orcid, excludeID string) (bool, error)
	UserTaken(userID, excludeID string) (bool, error)
	// Exists checks the referenced record of the given model.
	Exists(model interface{}, id string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// activeEmploymentSQL matches employees having at least one employment active on the given day.
const activeEmploymentSQL = `EXISTS (SELECT 1 FROM employments e WHERE e.employee_id = employees.id
	AND (e.since_date IS NULL OR e.since_date <= @day)
	AND (e.until_date IS NULL OR e.until_date >= @day))`

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	err = i.db.
		Omit("User", "Status", "AcademicDegree", "Discipline", "Employments").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	return i.get("employees.id = ?", id)
}

func (i impl) GetByUserID(userID string) (*dbmodels.Employee, error) {
	return i.get("employees.user_id = ?", userID)
}

func (i impl) get(query string, arg string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.preload(i.db).
		Where(query, arg).
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

func (i impl) List(filter employeeapimodels.EmployeeFilter, today time.Time) (list []dbmodels.Employee, rowCount int64, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Joins("JOIN users ON users.id = employees.user_id")
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(users.last_name) LIKE ? OR LOWER(users.first_name) LIKE ? OR LOWER(users.username) LIKE ? OR employees.orcid LIKE ?",
			like, like, like, like)
	}
	if filter.StatusID != "" {
		tx = tx.Where("employees.status_id = ?", filter.StatusID)
	}
	if employed := helpers.ParseBoolFilter(filter.Employed); employed != nil {
		if *employed {
			tx = tx.Where(activeEmploymentSQL, map[string]interface{}{"day": today})
		} else {
			tx = tx.Where("NOT "+activeEmploymentSQL, map[string]interface{}{"day": today})
		}
	}
	if approved := helpers.ParseBoolFilter(filter.Approved); approved != nil {
		tx = tx.Where("employees.approved = ?", *approved)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = i.preload(tx).
		Order("users.last_name, users.first_name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Employee{}).
		Error
}

func (i impl) OrcidTaken(orcid, excludeID string) (bool, error) {
	return i.taken("orcid = ?", orcid, excludeID)
}

func (i impl) UserTaken(userID, excludeID string) (bool, error) {
	return i.taken("user_id = ?", userID, excludeID)
}

func (i impl) taken(query, value, excludeID string) (bool, error) {
	var count int64
	tx := i.db.Model(&dbmodels.Employee{}).Where(query, value)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) Exists(model interface{}, id string) (bool, error) {
	var count int64
	err := i.db.
		Model(model).
		Where("id = ?", id).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) preload(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("User").
		Preload("Status").
		Preload("AcademicDegree").
		Preload("Discipline").
		Preload("Employments.Position").
		Preload("Employments.Group").
		Preload("Employments.Department.Ancestor.Ancestor")
}
