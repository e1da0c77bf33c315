package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	elementquery "academic-records-backend/lib/utils/element-query"
	"academic-records-backend/models"
	outputsapimodels "academic-records-backend/models/api/outputs"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Project) (id string, err error)
	GetByID(id string) (rec *dbmodels.Project, err error)
	List(filter outputsapimodels.OutputFilter) (list []dbmodels.Project, rowCount int64, err error)
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

func (i impl) Create(rec dbmodels.Project) (id string, err error) {
	err = i.db.
		Omit("Contributions").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Project, error) {
	rec := dbmodels.Project{}
	err := elementquery.PreloadContributions(i.db).
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

func (i impl) List(filter outputsapimodels.OutputFilter) (list []dbmodels.Project, rowCount int64, err error) {
	list = []dbmodels.Project{}
	tx := elementquery.Filter(i.db.Model(&dbmodels.Project{}), "projects", models.ElementProject, filter)
	tx, rowCount, err = elementquery.Page(tx, filter)
	if err != nil {
		return nil, 0, err
	}
	err = elementquery.PreloadContributions(tx).
		Order("projects.since_date DESC NULLS LAST, projects.title").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Project{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return elementquery.Delete(i.db, &dbmodels.Project{}, models.ElementProject, id)
}
