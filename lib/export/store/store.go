package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"academic-records-backend/lib/utils/helpers"
	"academic-records-backend/models"
	contributionapimodels "academic-records-backend/models/api/contribution"
	employeeapimodels "academic-records-backend/models/api/employee"
	dbmodels "academic-records-backend/models/db"
)

// ElementRow is the part of an output the reports print.
type ElementRow struct {
	ID    string
	Title string
	Year  string
}

type Provider interface {
	// Employees ignores the pagination and the employed flag of the filter.
	Employees(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error)
	Contributions(filter contributionapimodels.ContributionFilter) (list []dbmodels.Contribution, err error)
	GetEmployee(id string) (rec *dbmodels.Employee, err error)
	Elements(kind models.ElementKind, ids []string) (rows map[string]ElementRow, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Employees(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Joins("JOIN users ON users.id = employees.user_id")
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(users.last_name) LIKE ? OR LOWER(users.first_name) LIKE ? OR employees.orcid LIKE ?", like, like, like)
	}
	if filter.StatusID != "" {
		tx = tx.Where("employees.status_id = ?", filter.StatusID)
	}
	if approved := helpers.ParseBoolFilter(filter.Approved); approved != nil {
		tx = tx.Where("employees.approved = ?", *approved)
	}
	err = preloadEmployee(tx).
		Order("users.last_name, users.first_name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Contributions(filter contributionapimodels.ContributionFilter) (list []dbmodels.Contribution, err error) {
	list = []dbmodels.Contribution{}
	tx := i.db.Model(&dbmodels.Contribution{})
	if filter.ContentType != "" {
		tx = tx.Where("content_type = ?", filter.ContentType)
	}
	if filter.ContentID != "" {
		tx = tx.Where("content_id = ?", filter.ContentID)
	}
	if filter.AuthorID != "" {
		tx = tx.Where("author_id = ?", filter.AuthorID)
	}
	if filter.EmployeeID != "" {
		tx = tx.Where("author_id IN (?)",
			i.db.Model(&dbmodels.Author{}).Select("id").Where("employee_id = ?", filter.EmployeeID))
	}
	if approved := helpers.ParseBoolFilter(filter.Approved); approved != nil {
		tx = tx.Where("approved = ?", *approved)
	}
	err = tx.
		Preload("Author.Employee.User").
		Preload("AuthorStatus").
		Order("content_type, created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetEmployee(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := preloadEmployee(i.db).
		Where("employees.id = ?", id).
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

var elementQueries = map[models.ElementKind]struct {
	table string
	year  string
}{
	models.ElementArticle: {table: "articles", year: "CAST(year AS text)"},
	models.ElementPatent:  {table: "patents", year: "CAST(year AS text)"},
	models.ElementProject: {table: "projects", year: "COALESCE(to_char(since_date, 'YYYY'), '')"},
}

func (i impl) Elements(kind models.ElementKind, ids []string) (map[string]ElementRow, error) {
	result := map[string]ElementRow{}
	if len(ids) == 0 {
		return result, nil
	}
	q, ok := elementQueries[kind]
	if !ok {
		return nil, errors.Errorf("unknown element type %q", kind)
	}
	rows := []ElementRow{}
	err := i.db.
		Table(q.table).
		Select("id, title, "+q.year+" AS year").
		Where("id IN ?", ids).
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ID] = row
	}
	return result, nil
}

func preloadEmployee(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("User").
		Preload("Status").
		Preload("AcademicDegree").
		Preload("Discipline").
		Preload("Employments.Position").
		Preload("Employments.Group").
		Preload("Employments.Department.Ancestor.Ancestor")
}
