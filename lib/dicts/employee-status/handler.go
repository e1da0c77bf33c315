package employeestatusprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/dicts/employee-status/store"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	dictapimodels "academic-records-backend/models/api/dict"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.EmployeeStatusData) (id string, err error)
	Update(id string, request dictapimodels.EmployeeStatusData) error
	Get(id string) (item dictapimodels.EmployeeStatusView, err error)
	List(filter dictapimodels.DictFilter) (list []dictapimodels.EmployeeStatusView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB))
}

func NewProvider(dictStore store.Provider) Provider {
	instance := impl{
		store: dictStore,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(request dictapimodels.EmployeeStatusData) (id string, err error) {
	rec := dbmodels.EmployeeStatus{
		Name: request.Name,
		Abbr: request.Abbr,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("status_name", rec.Name).
		Info("employee status created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.EmployeeStatusData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "employee status not found")
	}
	rec.Name = request.Name
	rec.Abbr = request.Abbr
	if err = rec.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name": rec.Name,
		"abbr": rec.Abbr,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("employee status updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.EmployeeStatusView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.EmployeeStatusView{}, err
	}
	if rec == nil {
		return dictapimodels.EmployeeStatusView{}, errors.Wrap(models.ErrNotFound, "employee status not found")
	}
	return dictapimodels.EmployeeStatusConvert(*rec), nil
}

func (i impl) List(filter dictapimodels.DictFilter) (list []dictapimodels.EmployeeStatusView, err error) {
	recList, err := i.store.List(filter.Search)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.EmployeeStatusView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.EmployeeStatusConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("employee status deleted")
	return nil
}
