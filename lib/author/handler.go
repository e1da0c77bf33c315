package authorprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/author/store"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	contributionapimodels "academic-records-backend/models/api/contribution"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request contributionapimodels.AuthorData) (id string, err error)
	Update(id string, request contributionapimodels.AuthorData) error
	Get(id string) (item contributionapimodels.AuthorView, err error)
	List(filter contributionapimodels.AuthorFilter) (list []contributionapimodels.AuthorView, err error)
	Delete(id string) error
	// GetRec is used by the contribution provider to learn the author's group.
	GetRec(id string) (*dbmodels.Author, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB))
}

func NewProvider(authorStore store.Provider) Provider {
	instance := impl{
		store: authorStore,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(request contributionapimodels.AuthorData) (id string, err error) {
	rec, err := i.build(request, "")
	if err != nil {
		return "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("alias", rec.Alias).
		Info("author created")
	return id, nil
}

func (i impl) Update(id string, request contributionapimodels.AuthorData) error {
	if _, err := i.GetRec(id); err != nil {
		return err
	}
	rec, err := i.build(request, id)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"employee_id": rec.EmployeeID,
		"alias":       rec.Alias,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("author updated")
	return nil
}

func (i impl) Get(id string) (item contributionapimodels.AuthorView, err error) {
	rec, err := i.GetRec(id)
	if err != nil {
		return contributionapimodels.AuthorView{}, err
	}
	return contributionapimodels.AuthorConvert(*rec), nil
}

func (i impl) GetRec(id string) (*dbmodels.Author, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "author not found")
	}
	return rec, nil
}

func (i impl) List(filter contributionapimodels.AuthorFilter) (list []contributionapimodels.AuthorView, err error) {
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	list = make([]contributionapimodels.AuthorView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, contributionapimodels.AuthorConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("author deleted")
	return nil
}

func (i impl) build(request contributionapimodels.AuthorData, excludeID string) (dbmodels.Author, error) {
	rec := dbmodels.Author{
		EmployeeID: request.EmployeeID,
		Alias:      request.Alias,
	}
	if rec.EmployeeID != nil && *rec.EmployeeID == "" {
		rec.EmployeeID = nil
	}
	if rec.IsEmployee() {
		employee, err := i.store.GetEmployee(*rec.EmployeeID)
		if err != nil {
			return dbmodels.Author{}, err
		}
		if employee == nil {
			return dbmodels.Author{}, models.NewValidationError("employee_id", "employee not found")
		}
		rec.Employee = employee
	}
	if err := rec.Clean(); err != nil {
		return dbmodels.Author{}, err
	}
	taken, err := i.store.AliasTaken(rec.EmployeeID, rec.Alias, excludeID)
	if err != nil {
		return dbmodels.Author{}, err
	}
	if taken {
		return dbmodels.Author{}, models.NewValidationError("alias", "author with this employee and alias already exists")
	}
	return rec, nil
}
