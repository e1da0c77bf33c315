package journalprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/dicts/journal/store"
	publisherprovider "academic-records-backend/lib/dicts/publisher"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	dictapimodels "academic-records-backend/models/api/dict"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.JournalData) (id string, err error)
	Update(id string, request dictapimodels.JournalData) error
	Get(id string) (item dictapimodels.JournalView, err error)
	List(filter dictapimodels.JournalFilter) (list []dictapimodels.JournalView, err error)
	Delete(id string) error
	// GetRec is used by the article provider to take the snapshots.
	GetRec(id string) (*dbmodels.Journal, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB), publisherprovider.Instance)
}

func NewProvider(journalStore store.Provider, publisher publisherprovider.Provider) Provider {
	instance := impl{
		store:     journalStore,
		publisher: publisher,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"publisher", instance.publisher,
	)
	return instance
}

type impl struct {
	store     store.Provider
	publisher publisherprovider.Provider
}

func (i impl) Create(request dictapimodels.JournalData) (id string, err error) {
	if err = i.checkRefs("", request); err != nil {
		return "", err
	}
	rec := dbmodels.Journal{
		PublisherID:  request.PublisherID,
		Title:        request.Title,
		Abbr:         request.Abbr,
		ImpactFactor: request.ImpactFactor,
		Rating:       request.Rating,
		AncestorID:   request.AncestorID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("journal_title", rec.Title).
		Info("journal created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.JournalData) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "journal not found")
	}
	if err = i.checkRefs(id, request); err != nil {
		return err
	}
	rec.PublisherID = request.PublisherID
	rec.Title = request.Title
	rec.Abbr = request.Abbr
	rec.ImpactFactor = request.ImpactFactor
	rec.Rating = request.Rating
	rec.AncestorID = request.AncestorID
	articles, err := i.store.Update(*rec)
	if err != nil {
		return err
	}
	logger.
		WithField("articles", articles).
		Info("journal updated, article snapshots refreshed")
	return nil
}

func (i impl) checkRefs(selfID string, request dictapimodels.JournalData) error {
	if request.PublisherID != nil {
		if _, err := i.publisher.Get(*request.PublisherID); err != nil {
			if models.IsNotFound(err) {
				return models.NewValidationError("publisher_id", "publisher not found")
			}
			return err
		}
	}
	if request.AncestorID != nil {
		if *request.AncestorID == selfID {
			return models.NewValidationError("ancestor_id", "a journal cannot be its own predecessor")
		}
		ancestor, err := i.store.GetByID(*request.AncestorID)
		if err != nil {
			return err
		}
		if ancestor == nil {
			return models.NewValidationError("ancestor_id", "predecessor journal not found")
		}
	}
	return nil
}

func (i impl) Get(id string) (item dictapimodels.JournalView, err error) {
	rec, err := i.GetRec(id)
	if err != nil {
		return dictapimodels.JournalView{}, err
	}
	return dictapimodels.JournalConvert(*rec), nil
}

func (i impl) GetRec(id string) (*dbmodels.Journal, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "journal not found")
	}
	return rec, nil
}

func (i impl) List(filter dictapimodels.JournalFilter) (list []dictapimodels.JournalView, err error) {
	recList, err := i.store.List(filter.Search, filter.PublisherID)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.JournalView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.JournalConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("journal deleted with its articles")
	return nil
}
