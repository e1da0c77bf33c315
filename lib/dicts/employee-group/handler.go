package employeegroupprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/dicts/employee-group/store"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	dictapimodels "academic-records-backend/models/api/dict"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.EmployeeGroupData) (id string, err error)
	Update(id string, request dictapimodels.EmployeeGroupData) error
	Get(id string) (item dictapimodels.EmployeeGroupView, err error)
	List(filter dictapimodels.DictFilter) (list []dictapimodels.EmployeeGroupView, err error)
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

func (i impl) Create(request dictapimodels.EmployeeGroupData) (id string, err error) {
	rec := dbmodels.EmployeeGroup{
		Name:     request.Name,
		Abbr:     request.Abbr,
		Teachers: teachersOrDefault(request.Teachers),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("group_name", rec.Name).
		Info("employee group created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.EmployeeGroupData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "employee group not found")
	}
	rec.Name = request.Name
	rec.Abbr = request.Abbr
	rec.Teachers = teachersOrDefault(request.Teachers)
	if err = rec.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":     rec.Name,
		"abbr":     rec.Abbr,
		"teachers": rec.Teachers,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("employee group updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.EmployeeGroupView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.EmployeeGroupView{}, err
	}
	if rec == nil {
		return dictapimodels.EmployeeGroupView{}, errors.Wrap(models.ErrNotFound, "employee group not found")
	}
	return dictapimodels.EmployeeGroupConvert(*rec), nil
}

func (i impl) List(filter dictapimodels.DictFilter) (list []dictapimodels.EmployeeGroupView, err error) {
	recList, err := i.store.List(filter.Search)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.EmployeeGroupView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.EmployeeGroupConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("employee group deleted")
	return nil
}

func teachersOrDefault(teachers models.YesNo) models.YesNo {
	if teachers == "" {
		return models.Yes
	}
	return teachers
}
