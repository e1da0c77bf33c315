package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"academic-records-backend/models"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AuthorStatus) (id string, err error)
	GetByID(id string) (rec *dbmodels.AuthorStatus, err error)
	List(search string, group models.AuthorGroup) (list []dbmodels.AuthorStatus, err error)
	// ListDefaults returns the default statuses of the group other than excludeID.
	ListDefaults(group models.AuthorGroup, excludeID string) (list []dbmodels.AuthorStatus, err error)
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

func (i impl) Create(rec dbmodels.AuthorStatus) (id string, err error) {
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

func (i impl) GetByID(id string) (*dbmodels.AuthorStatus, error) {
	rec := dbmodels.AuthorStatus{}
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

func (i impl) List(search string, group models.AuthorGroup) (list []dbmodels.AuthorStatus, err error) {
	list = []dbmodels.AuthorStatus{}
	tx := i.db.Model(&dbmodels.AuthorStatus{})
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(abbr) LIKE ?", like, like)
	}
	if group != "" {
		tx = tx.Where("\"group\" = ?", group)
	}
	err = tx.Order("\"group\", name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListDefaults(group models.AuthorGroup, excludeID string) (list []dbmodels.AuthorStatus, err error) {
	list = []dbmodels.AuthorStatus{}
	tx := i.db.
		Model(&dbmodels.AuthorStatus{}).
		Where("\"group\" = ?", group).
		Where("\"default\" = ?", models.Yes)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
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
	return i.db.
		Model(&dbmodels.AuthorStatus{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.AuthorStatus{}).
		Error
}
