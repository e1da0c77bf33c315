package elementquery

import (
	"strings"

	"gorm.io/gorm"

	"academic-records-backend/lib/utils/helpers"
	"academic-records-backend/models"
	outputsapimodels "academic-records-backend/models/api/outputs"
	dbmodels "academic-records-backend/models/db"
)

// Filter applies the output list filter to a query over table.
func Filter(tx *gorm.DB, table string, kind models.ElementKind, filter outputsapimodels.OutputFilter) *gorm.DB {
	if search := strings.TrimSpace(filter.Search); search != "" {
		tx = tx.Where("LOWER("+table+".title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if filter.Year > 0 && kind != models.ElementProject {
		tx = tx.Where(table+".year = ?", filter.Year)
	}
	if approved := helpers.ParseBoolFilter(filter.Approved); approved != nil {
		tx = tx.Where(table+".approved = ?", *approved)
	}
	if filter.EmployeeID != "" {
		authored := tx.Session(&gorm.Session{NewDB: true}).
			Model(&dbmodels.Contribution{}).
			Select("contributions.content_id").
			Joins("JOIN authors ON authors.id = contributions.author_id").
			Where("contributions.content_type = ? AND authors.employee_id = ?", kind, filter.EmployeeID)
		tx = tx.Where(table+".id IN (?)", authored)
	}
	return tx
}

// Page counts the rows matching tx and returns the query limited to the requested page.
func Page(tx *gorm.DB, pagination interface{ GetPage() (int, int) }) (*gorm.DB, int64, error) {
	var rowCount int64
	if err := tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	page, limit := pagination.GetPage()
	return tx.Offset((page - 1) * limit).Limit(limit), rowCount, nil
}

// PreloadContributions loads the contributions of the elements with their authors.
func PreloadContributions(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Contributions", func(db *gorm.DB) *gorm.DB {
			return db.Order("contributions.created_at")
		}).
		Preload("Contributions.Author.Employee.User").
		Preload("Contributions.AuthorStatus")
}

// Delete removes the element and the contributions pointing to it.
func Delete(db *gorm.DB, model interface{}, kind models.ElementKind, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("content_type = ? AND content_id = ?", kind, id).
			Delete(&dbmodels.Contribution{}).
			Error
		if err != nil {
			return err
		}
		return tx.
			Where("id = ?", id).
			Delete(model).
			Error
	})
}
