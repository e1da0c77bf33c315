package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"academic-records-backend/models"
	approvalapimodels "academic-records-backend/models/api/approval"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	// SetApproved locks the selected records whose flag differs from approved, changes the flag
	// and writes one history row per changed record, all in one transaction.
	SetApproved(kind models.ApprovalKind, ids []string, approved bool, history func(recordID string) dbmodels.ApprovalHistory) (changed []string, err error)
	List(kind models.ApprovalKind, approved *bool, page, limit int) (list []approvalapimodels.ApprovalRecord, rowCount int64, err error)
	History(kind models.ApprovalKind, recordID string) (list []dbmodels.ApprovalHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

type kindQuery struct {
	model interface{}
	table string
	label string
	joins string
}

var kindQueries = map[models.ApprovalKind]kindQuery{
	models.ApprovalArticle: {model: &dbmodels.Article{}, table: "articles", label: "articles.title"},
	models.ApprovalPatent:  {model: &dbmodels.Patent{}, table: "patents", label: "patents.title"},
	models.ApprovalProject: {model: &dbmodels.Project{}, table: "projects", label: "projects.title"},
	models.ApprovalContribution: {
		model: &dbmodels.Contribution{},
		table: "contributions",
		label: "authors.alias || ' (' || contributions.content_type || ', ' || contributions.percentage || '%)'",
		joins: "LEFT JOIN authors ON authors.id = contributions.author_id",
	},
	models.ApprovalEmployee: {
		model: &dbmodels.Employee{},
		table: "employees",
		label: "users.last_name || ' ' || users.first_name",
		joins: "LEFT JOIN users ON users.id = employees.user_id",
	},
}

func queryOf(kind models.ApprovalKind) (kindQuery, error) {
	q, ok := kindQueries[kind]
	if !ok {
		return kindQuery{}, errors.Errorf("unknown approval kind %q", kind)
	}
	return q, nil
}

func (i impl) SetApproved(kind models.ApprovalKind, ids []string, approved bool, history func(recordID string) dbmodels.ApprovalHistory) (changed []string, err error) {
	q, err := queryOf(kind)
	if err != nil {
		return nil, err
	}
	changed = []string{}
	if len(ids) == 0 {
		return changed, nil
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(q.model).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ? AND approved <> ?", ids, approved).
			Order("id").
			Pluck("id", &changed).
			Error
		if err != nil {
			return err
		}
		if len(changed) == 0 {
			return nil
		}
		err = tx.
			Model(q.model).
			Where("id IN ?", changed).
			Update("approved", approved).
			Error
		if err != nil {
			return err
		}
		rows := make([]dbmodels.ApprovalHistory, 0, len(changed))
		for _, id := range changed {
			rows = append(rows, history(id))
		}
		return tx.
			Omit("User").
			Create(&rows).
			Error
	})
	if err != nil {
		return nil, err
	}
	return changed, nil
}

func (i impl) List(kind models.ApprovalKind, approved *bool, page, limit int) (list []approvalapimodels.ApprovalRecord, rowCount int64, err error) {
	q, err := queryOf(kind)
	if err != nil {
		return nil, 0, err
	}
	list = []approvalapimodels.ApprovalRecord{}
	tx := i.db.Model(q.model)
	if q.joins != "" {
		tx = tx.Joins(q.joins)
	}
	if approved != nil {
		tx = tx.Where(q.table+".approved = ?", *approved)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	err = tx.
		Select(q.table + ".id AS id, " + q.label + " AS label, " + q.table + ".approved AS approved, " + q.table + ".updated_at AS updated_at").
		Order(q.table + ".updated_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) History(kind models.ApprovalKind, recordID string) (list []dbmodels.ApprovalHistory, err error) {
	list = []dbmodels.ApprovalHistory{}
	err = i.db.
		Preload("User").
		Where("kind = ? AND record_id = ?", kind, recordID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
