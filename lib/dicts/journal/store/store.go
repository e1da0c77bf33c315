package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Journal) (id string, err error)
	GetByID(id string) (rec *dbmodels.Journal, err error)
	List(search, publisherID string) (list []dbmodels.Journal, err error)
	// Update saves the journal and copies its impact factor and rating to
	// its articles in one transaction. It returns the number of refreshed articles.
	Update(rec dbmodels.Journal) (articles int64, err error)
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

func (i impl) Create(rec dbmodels.Journal) (id string, err error) {
	rec.Clean()
	err = rec.Validate()
	if err != nil {
		return "", err
	}
	err = i.db.
		Omit("Publisher", "Ancestor").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Journal, error) {
	rec := dbmodels.Journal{}
	err := i.db.
		Preload("Publisher").
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

func (i impl) List(search, publisherID string) (list []dbmodels.Journal, err error) {
	list = []dbmodels.Journal{}
	tx := i.db.
		Model(&dbmodels.Journal{}).
		Preload("Publisher").
		Preload("Ancestor")
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(abbr) LIKE ?", like, like)
	}
	if publisherID != "" {
		tx = tx.Where("publisher_id = ?", publisherID)
	}
	err = tx.Order("title").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(rec dbmodels.Journal) (articles int64, err error) {
	rec.Clean()
	if err = rec.Validate(); err != nil {
		return 0, err
	}
	updMap := map[string]interface{}{
		"publisher_id":  rec.PublisherID,
		"title":         rec.Title,
		"abbr":          rec.Abbr,
		"impact_factor": rec.ImpactFactor,
		"rating":        rec.Rating,
		"ancestor_id":   rec.AncestorID,
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.Journal{}).
			Where("id = ?", rec.ID).
			Updates(updMap).
			Error
		if err != nil {
			return err
		}
		result := tx.
			Model(&dbmodels.Article{}).
			Where("journal_id = ?", rec.ID).
			Updates(map[string]interface{}{
				"journal_impact_factor": rec.ImpactFactor,
				"journal_rating":        rec.Rating,
			})
		articles = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, err
	}
	return articles, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Journal{}).
		Error
}
