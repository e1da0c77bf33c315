package projectprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/project/store"
	"academic-records-backend/lib/utils/helpers"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	outputsapimodels "academic-records-backend/models/api/outputs"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request outputsapimodels.ProjectData) (id string, err error)
	Update(id string, request outputsapimodels.ProjectData) error
	Get(id string) (item outputsapimodels.ProjectView, err error)
	List(filter outputsapimodels.OutputFilter) (list []outputsapimodels.ProjectView, rowCount int64, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB))
}

func NewProvider(projectStore store.Provider) Provider {
	instance := impl{
		store: projectStore,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(request outputsapimodels.ProjectData) (id string, err error) {
	rec, err := build(request)
	if err != nil {
		return "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("project created")
	return id, nil
}

func (i impl) Update(id string, request outputsapimodels.ProjectData) error {
	existing, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.Wrap(models.ErrNotFound, "project not found")
	}
	rec, err := build(request)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title":      rec.Title,
		"acronym":    rec.Acronym,
		"since_date": rec.SinceDate,
		"until_date": rec.UntilDate,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("project updated")
	return nil
}

func (i impl) Get(id string) (item outputsapimodels.ProjectView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return outputsapimodels.ProjectView{}, err
	}
	if rec == nil {
		return outputsapimodels.ProjectView{}, errors.Wrap(models.ErrNotFound, "project not found")
	}
	return outputsapimodels.ProjectConvert(*rec), nil
}

func (i impl) List(filter outputsapimodels.OutputFilter) (list []outputsapimodels.ProjectView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]outputsapimodels.ProjectView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, outputsapimodels.ProjectConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("project deleted together with its contributions")
	return nil
}

func build(request outputsapimodels.ProjectData) (dbmodels.Project, error) {
	since, err := helpers.ParseDate(request.SinceDate)
	if err != nil {
		return dbmodels.Project{}, models.NewValidationError("since_date", "invalid date")
	}
	until, err := helpers.ParseDate(request.UntilDate)
	if err != nil {
		return dbmodels.Project{}, models.NewValidationError("until_date", "invalid date")
	}
	rec := dbmodels.Project{
		Element:   dbmodels.Element{Title: request.Title},
		Acronym:   request.Acronym,
		SinceDate: since,
		UntilDate: until,
	}
	if err = rec.Validate(); err != nil {
		return dbmodels.Project{}, err
	}
	return rec, nil
}
