package academicdegreeprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/dicts/academic-degree/store"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	dictapimodels "academic-records-backend/models/api/dict"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.AcademicDegreeData) (id string, err error)
	Update(id string, request dictapimodels.AcademicDegreeData) error
	Get(id string) (item dictapimodels.AcademicDegreeView, err error)
	List(filter dictapimodels.DictFilter) (list []dictapimodels.AcademicDegreeView, err error)
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

func (i impl) Create(request dictapimodels.AcademicDegreeData) (id string, err error) {
	rec := dbmodels.AcademicDegree{
		Name: request.Name,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("degree_name", rec.Name).
		Info("academic degree created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.AcademicDegreeData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "academic degree not found")
	}
	rec.Name = request.Name
	if err = rec.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name": rec.Name,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("academic degree updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.AcademicDegreeView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.AcademicDegreeView{}, err
	}
	if rec == nil {
		return dictapimodels.AcademicDegreeView{}, errors.Wrap(models.ErrNotFound, "academic degree not found")
	}
	return dictapimodels.AcademicDegreeConvert(*rec), nil
}

func (i impl) List(filter dictapimodels.DictFilter) (list []dictapimodels.AcademicDegreeView, err error) {
	recList, err := i.store.List(filter.Search)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.AcademicDegreeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.AcademicDegreeConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("academic degree deleted")
	return nil
}
