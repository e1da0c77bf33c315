package disciplineprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/dicts/discipline/store"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	dictapimodels "academic-records-backend/models/api/dict"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.DisciplineData) (id string, err error)
	Update(id string, request dictapimodels.DisciplineData) error
	Get(id string) (item dictapimodels.DisciplineView, err error)
	List(filter dictapimodels.DictFilter) (list []dictapimodels.DisciplineView, err error)
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

func (i impl) Create(request dictapimodels.DisciplineData) (id string, err error) {
	rec := dbmodels.Discipline{
		Name:   request.Name,
		Abbr:   request.Abbr,
		Domain: domainOrDefault(request.Domain),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("discipline_name", rec.Name).
		Info("discipline created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.DisciplineData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "discipline not found")
	}
	rec.Name = request.Name
	rec.Abbr = request.Abbr
	rec.Domain = domainOrDefault(request.Domain)
	if err = rec.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":   rec.Name,
		"abbr":   rec.Abbr,
		"domain": rec.Domain,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("discipline updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.DisciplineView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DisciplineView{}, err
	}
	if rec == nil {
		return dictapimodels.DisciplineView{}, errors.Wrap(models.ErrNotFound, "discipline not found")
	}
	return dictapimodels.DisciplineConvert(*rec), nil
}

func (i impl) List(filter dictapimodels.DictFilter) (list []dictapimodels.DisciplineView, err error) {
	recList, err := i.store.List(filter.Search)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.DisciplineView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.DisciplineConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("discipline deleted")
	return nil
}

func domainOrDefault(domain models.DisciplineDomain) models.DisciplineDomain {
	if domain == "" {
		return models.DomainSciences
	}
	return domain
}
