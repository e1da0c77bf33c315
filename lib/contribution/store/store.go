package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"academic-records-backend/lib/utils/helpers"
	"academic-records-backend/models"
	contributionapimodels "academic-records-backend/models/api/contribution"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Contribution) (id string, err error)
	GetByID(id string) (rec *dbmodels.Contribution, err error)
	List(filter contributionapimodels.ContributionFilter) (list []dbmodels.Contribution, rowCount int64, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ElementExists(kind models.ElementKind, contentID string) (bool, error)
	// ElementTitles maps element ids of one kind to their titles.
	ElementTitles(kind models.ElementKind, ids []string) (titles map[string]string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func elementModel(kind models.ElementKind) (interface{}, error) {
	switch kind {
	case models.ElementArticle:
		return &dbmodels.Article{}, nil
	case models.ElementPatent:
		return &dbmodels.Patent{}, nil
	case models.ElementProject:
		return &dbmodels.Project{}, nil
	}
	return nil, errors.Errorf("unknown element type %q", kind)
}

func (i impl) Create(rec dbmodels.Contribution) (id string, err error) {
	err = i.db.
		Omit("Author", "AuthorStatus").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Contribution, error) {
	rec := dbmodels.Contribution{}
	err := preload(i.db).
		Where("contributions.id = ?", id).
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

func (i impl) List(filter contributionapimodels.ContributionFilter) (list []dbmodels.Contribution, rowCount int64, err error) {
	list = []dbmodels.Contribution{}
	tx := i.db.Model(&dbmodels.Contribution{})
	if filter.ContentType != "" {
		tx = tx.Where("contributions.content_type = ?", filter.ContentType)
	}
	if filter.ContentID != "" {
		tx = tx.Where("contributions.content_id = ?", filter.ContentID)
	}
	if filter.AuthorID != "" {
		tx = tx.Where("contributions.author_id = ?", filter.AuthorID)
	}
	if filter.EmployeeID != "" {
		tx = tx.Where("contributions.author_id IN (?)",
			i.db.Model(&dbmodels.Author{}).Select("id").Where("employee_id = ?", filter.EmployeeID))
	}
	if approved := helpers.ParseBoolFilter(filter.Approved); approved != nil {
		tx = tx.Where("contributions.approved = ?", *approved)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = preload(tx).
		Order("contributions.created_at").
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
		Model(&dbmodels.Contribution{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Contribution{}).
		Error
}

func (i impl) ElementExists(kind models.ElementKind, contentID string) (bool, error) {
	model, err := elementModel(kind)
	if err != nil {
		return false, err
	}
	var count int64
	err = i.db.
		Model(model).
		Where("id = ?", contentID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) ElementTitles(kind models.ElementKind, ids []string) (map[string]string, error) {
	titles := map[string]string{}
	if len(ids) == 0 {
		return titles, nil
	}
	model, err := elementModel(kind)
	if err != nil {
		return nil, err
	}
	rows := []struct {
		ID    string
		Title string
	}{}
	err = i.db.
		Model(model).
		Select("id, title").
		Where("id IN ?", ids).
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		titles[row.ID] = row.Title
	}
	return titles, nil
}

func preload(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author.Employee.User").
		Preload("Author.Employee.AcademicDegree").
		Preload("AuthorStatus")
}
