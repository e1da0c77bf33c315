package patentprovider

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/config"
	"academic-records-backend/db"
	"academic-records-backend/lib/patent/store"
	"academic-records-backend/lib/utils/helpers"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	outputsapimodels "academic-records-backend/models/api/outputs"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request outputsapimodels.PatentData) (id string, err error)
	Update(id string, request outputsapimodels.PatentData) error
	Get(id string) (item outputsapimodels.PatentView, err error)
	List(filter outputsapimodels.OutputFilter) (list []outputsapimodels.PatentView, rowCount int64, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	bounds := dbmodels.YearBounds{
		Min:       config.Conf.Records.MinArticleYear,
		MaxOffset: config.Conf.Records.MaxArticleYearOffset,
	}
	Instance = NewProvider(store.NewInstance(db.DB), bounds)
}

func NewProvider(patentStore store.Provider, bounds dbmodels.YearBounds) Provider {
	instance := impl{
		store:  patentStore,
		bounds: bounds,
		today:  helpers.Today,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store  store.Provider
	bounds dbmodels.YearBounds
	today  func() time.Time
}

func (i impl) Create(request outputsapimodels.PatentData) (id string, err error) {
	rec, err := i.build(request)
	if err != nil {
		return "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("patent created")
	return id, nil
}

func (i impl) Update(id string, request outputsapimodels.PatentData) error {
	existing, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.Wrap(models.ErrNotFound, "patent not found")
	}
	rec, err := i.build(request)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title":  rec.Title,
		"number": rec.Number,
		"year":   rec.Year,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("patent updated")
	return nil
}

func (i impl) Get(id string) (item outputsapimodels.PatentView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return outputsapimodels.PatentView{}, err
	}
	if rec == nil {
		return outputsapimodels.PatentView{}, errors.Wrap(models.ErrNotFound, "patent not found")
	}
	return outputsapimodels.PatentConvert(*rec), nil
}

func (i impl) List(filter outputsapimodels.OutputFilter) (list []outputsapimodels.PatentView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]outputsapimodels.PatentView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, outputsapimodels.PatentConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("patent deleted together with its contributions")
	return nil
}

func (i impl) build(request outputsapimodels.PatentData) (dbmodels.Patent, error) {
	now := i.today()
	rec := dbmodels.Patent{
		Element: dbmodels.Element{Title: request.Title},
		Number:  request.Number,
		Year:    now.Year(),
	}
	if request.Year != nil {
		rec.Year = *request.Year
	}
	if err := rec.Validate(now, i.bounds); err != nil {
		return dbmodels.Patent{}, err
	}
	return rec, nil
}
