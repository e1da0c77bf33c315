package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"academic-records-backend/lib/utils/helpers"
	usersapimodels "academic-records-backend/models/api/users"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	GetByUsername(username string) (rec *dbmodels.User, err error)
	GetByIDs(ids []string) (list []dbmodels.User, err error)
	List(filter usersapimodels.UserFilter) (list []dbmodels.User, rowCount int64, err error)
	Update(id string, updMap map[string]interface{}) error
	SetActive(ids []string, active bool) error
	Delete(id string) error
	UsernameTaken(username, excludeID string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

const missingDataSQL = "(users.first_name = '' OR users.last_name = '' OR users.email = '')"

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	rec.Clean()
	if err = rec.Validate(); err != nil {
		return "", err
	}
	if err = i.db.Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	return i.get("id = ?", id)
}

func (i impl) GetByUsername(username string) (*dbmodels.User, error) {
	return i.get("username = ?", username)
}

func (i impl) get(query, arg string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
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

func (i impl) GetByIDs(ids []string) (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	if len(ids) == 0 {
		return list, nil
	}
	err = i.db.
		Where("id IN ?", ids).
		Order("username").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List(filter usersapimodels.UserFilter) (list []dbmodels.User, rowCount int64, err error) {
	list = []dbmodels.User{}
	tx := i.db.Model(&dbmodels.User{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(users.username) LIKE ? OR LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ? OR LOWER(users.email) LIKE ?",
			like, like, like, like)
	}
	if missing := helpers.ParseBoolFilter(filter.MissingData); missing != nil {
		if *missing {
			tx = tx.Where(missingDataSQL)
		} else {
			tx = tx.Where("NOT " + missingDataSQL)
		}
	}
	if active := helpers.ParseBoolFilter(filter.IsActive); active != nil {
		tx = tx.Where("users.is_active = ?", *active)
	}
	if staff := helpers.ParseBoolFilter(filter.IsStaff); staff != nil {
		tx = tx.Where("users.is_staff = ?", *staff)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("users.username").
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
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) SetActive(ids []string, active bool) error {
	if len(ids) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.User{}).
		Where("id IN ?", ids).
		Update("is_active", active).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.User{}).
		Error
}

func (i impl) UsernameTaken(username, excludeID string) (bool, error) {
	var count int64
	tx := i.db.Model(&dbmodels.User{}).Where("username = ?", username)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
