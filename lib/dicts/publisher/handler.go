package publisherprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/dicts/publisher/store"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	dictapimodels "academic-records-backend/models/api/dict"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.PublisherData) (id string, err error)
	Update(id string, request dictapimodels.PublisherData) error
	Get(id string) (item dictapimodels.PublisherView, err error)
	List(filter dictapimodels.DictFilter) (list []dictapimodels.PublisherView, err error)
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

func (i impl) Create(request dictapimodels.PublisherData) (id string, err error) {
	rec := dbmodels.Publisher{
		Name: request.Name,
		Abbr: request.Abbr,
		Kind: request.Kind,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("publisher_name", rec.Name).
		Info("publisher created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.PublisherData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "publisher not found")
	}
	rec.Name = request.Name
	rec.Abbr = request.Abbr
	rec.Kind = request.Kind
	if err = rec.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name": rec.Name,
		"abbr": rec.Abbr,
		"kind": rec.Kind,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("publisher updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.PublisherView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.PublisherView{}, err
	}
	if rec == nil {
		return dictapimodels.PublisherView{}, errors.Wrap(models.ErrNotFound, "publisher not found")
	}
	return dictapimodels.PublisherConvert(*rec), nil
}

func (i impl) List(filter dictapimodels.DictFilter) (list []dictapimodels.PublisherView, err error) {
	recList, err := i.store.List(filter.Search)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.PublisherView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.PublisherConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("publisher deleted")
	return nil
}
