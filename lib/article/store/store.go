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
	Create(rec dbmodels.Article) (id string, err error)
	GetByID(id string) (rec *dbmodels.Article, err error)
	List(filter outputsapimodels.OutputFilter) (list []dbmodels.Article, rowCount int64, err error)
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

func (i impl) Create(rec dbmodels.Article) (id string, err error) {
	err = i.db.
		Omit("Journal", "Contributions").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Article, error) {
	rec := dbmodels.Article{}
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

func (i impl) List(filter outputsapimodels.OutputFilter) (list []dbmodels.Article, rowCount int64, err error) {
	list = []dbmodels.Article{}
	tx := elementquery.Filter(i.db.Model(&dbmodels.Article{}), "articles", models.ElementArticle, filter)
	tx, rowCount, err = elementquery.Page(tx, filter)
	if err != nil {
		return nil, 0, err
	}
	err = preload(tx).
		Order("articles.year DESC, articles.title").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Article{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return elementquery.Delete(i.db, &dbmodels.Article{}, models.ElementArticle, id)
}

func preload(tx *gorm.DB) *gorm.DB {
	return elementquery.PreloadContributions(tx.Preload("Journal"))
}
