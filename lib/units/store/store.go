package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	CreateUniversity(rec dbmodels.University) (id string, err error)
	GetUniversity(id string) (rec *dbmodels.University, err error)
	ListUniversities(search string) (list []dbmodels.University, err error)
	UpdateUniversity(id string, updMap map[string]interface{}) error
	DeleteUniversity(id string) error

	CreateFaculty(rec dbmodels.Faculty) (id string, err error)
	GetFaculty(id string) (rec *dbmodels.Faculty, err error)
	ListFaculties(universityID, search string) (list []dbmodels.Faculty, err error)
	UpdateFaculty(id string, updMap map[string]interface{}) error
	DeleteFaculty(id string) error

	CreateDepartment(rec dbmodels.Department) (id string, err error)
	GetDepartment(id string) (rec *dbmodels.Department, err error)
	ListDepartments(facultyID, search string) (list []dbmodels.Department, err error)
	UpdateDepartment(id string, updMap map[string]interface{}) error
	DeleteDepartment(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateUniversity(rec dbmodels.University) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	if err = i.db.Omit("Faculties").Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetUniversity(id string) (*dbmodels.University, error) {
	rec := dbmodels.University{}
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

func (i impl) ListUniversities(search string) (list []dbmodels.University, err error) {
	list = []dbmodels.University{}
	tx := i.db.Model(&dbmodels.University{})
	tx = withSearch(tx, "universities", search)
	err = tx.Order("universities.name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateUniversity(id string, updMap map[string]interface{}) error {
	return i.update(&dbmodels.University{}, id, updMap)
}

func (i impl) DeleteUniversity(id string) error {
	return i.delete(&dbmodels.University{}, id)
}

func (i impl) CreateFaculty(rec dbmodels.Faculty) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	if err = i.db.Omit("Ancestor", "Departments").Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetFaculty(id string) (*dbmodels.Faculty, error) {
	rec := dbmodels.Faculty{}
	err := i.db.
		Preload("Ancestor").
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

func (i impl) ListFaculties(universityID, search string) (list []dbmodels.Faculty, err error) {
	list = []dbmodels.Faculty{}
	tx := i.db.Model(&dbmodels.Faculty{}).Preload("Ancestor")
	if universityID != "" {
		tx = tx.Where("ancestor_id = ?", universityID)
	}
	tx = withSearch(tx, "faculties", search)
	err = tx.Order("faculties.name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateFaculty(id string, updMap map[string]interface{}) error {
	return i.update(&dbmodels.Faculty{}, id, updMap)
}

func (i impl) DeleteFaculty(id string) error {
	return i.delete(&dbmodels.Faculty{}, id)
}

func (i impl) CreateDepartment(rec dbmodels.Department) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	if err = i.db.Omit("Ancestor").Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetDepartment(id string) (*dbmodels.Department, error) {
	rec := dbmodels.Department{}
	err := i.db.
		Preload("Ancestor.Ancestor").
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

func (i impl) ListDepartments(facultyID, search string) (list []dbmodels.Department, err error) {
	list = []dbmodels.Department{}
	tx := i.db.Model(&dbmodels.Department{}).Preload("Ancestor.Ancestor")
	if facultyID != "" {
		tx = tx.Where("ancestor_id = ?", facultyID)
	}
	tx = withSearch(tx, "departments", search)
	err = tx.Order("departments.name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateDepartment(id string, updMap map[string]interface{}) error {
	return i.update(&dbmodels.Department{}, id, updMap)
}

func (i impl) DeleteDepartment(id string) error {
	return i.delete(&dbmodels.Department{}, id)
}

func (i impl) update(model interface{}, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(model).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) delete(model interface{}, id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(model).
		Error
}

func withSearch(tx *gorm.DB, table, search string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" {
		return tx
	}
	like := "%" + strings.ToLower(search) + "%"
	return tx.Where("LOWER("+table+".name) LIKE ? OR LOWER("+table+".abbr) LIKE ?", like, like)
}
