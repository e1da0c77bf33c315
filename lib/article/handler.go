package articleprovider

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/config"
	"academic-records-backend/db"
	"academic-records-backend/lib/article/store"
	journalprovider "academic-records-backend/lib/dicts/journal"
	"academic-records-backend/lib/utils/helpers"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	outputsapimodels "academic-records-backend/models/api/outputs"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request outputsapimodels.ArticleData) (id string, err error)
	Update(id string, request outputsapimodels.ArticleData) error
	Get(id string) (item outputsapimodels.ArticleView, err error)
	List(filter outputsapimodels.OutputFilter) (list []outputsapimodels.ArticleView, rowCount int64, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	bounds := dbmodels.YearBounds{
		Min:       config.Conf.Records.MinArticleYear,
		MaxOffset: config.Conf.Records.MaxArticleYearOffset,
	}
	Instance = NewProvider(store.NewInstance(db.DB), journalprovider.Instance, bounds, config.Conf.Records.DOIURLPrefix)
}

func NewProvider(articleStore store.Provider, journals journalprovider.Provider, bounds dbmodels.YearBounds, doiPrefix string) Provider {
	instance := impl{
		store:     articleStore,
		journals:  journals,
		bounds:    bounds,
		doiPrefix: doiPrefix,
		today:     helpers.Today,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"journalprovider", instance.journals,
	)
	return instance
}

type impl struct {
	store     store.Provider
	journals  journalprovider.Provider
	bounds    dbmodels.YearBounds
	doiPrefix string
	today     func() time.Time
}

func (i impl) Create(request outputsapimodels.ArticleData) (id string, err error) {
	rec, err := i.build(request)
	if err != nil {
		return "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("journal_id", rec.JournalID).
		Info("article created")
	return id, nil
}

func (i impl) Update(id string, request outputsapimodels.ArticleData) error {
	existing, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.Wrap(models.ErrNotFound, "article not found")
	}
	rec, err := i.build(request)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title":                 rec.Title,
		"journal_id":            rec.JournalID,
		"year":                  rec.Year,
		"volume":                rec.Volume,
		"pages":                 rec.Pages,
		"doi":                   rec.DOI,
		"open_access":           rec.OpenAccess,
		"journal_impact_factor": rec.JournalImpactFactor,
		"journal_rating":        rec.JournalRating,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("article updated")
	return nil
}

func (i impl) Get(id string) (item outputsapimodels.ArticleView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return outputsapimodels.ArticleView{}, err
	}
	if rec == nil {
		return outputsapimodels.ArticleView{}, errors.Wrap(models.ErrNotFound, "article not found")
	}
	return outputsapimodels.ArticleConvert(*rec, i.doiPrefix), nil
}

func (i impl) List(filter outputsapimodels.OutputFilter) (list []outputsapimodels.ArticleView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]outputsapimodels.ArticleView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, outputsapimodels.ArticleConvert(rec, i.doiPrefix))
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("article deleted together with its contributions")
	return nil
}

func (i impl) build(request outputsapimodels.ArticleData) (dbmodels.Article, error) {
	now := i.today()
	rec := dbmodels.Article{
		Element:    dbmodels.Element{Title: request.Title},
		JournalID:  request.JournalID,
		Year:       now.Year(),
		Volume:     request.Volume,
		Pages:      request.Pages,
		DOI:        request.DOI,
		OpenAccess: request.OpenAccess,
	}
	if request.Year != nil {
		rec.Year = *request.Year
	}
	if rec.JournalID != "" {
		journal, err := i.journals.GetRec(rec.JournalID)
		if err != nil {
			if models.IsNotFound(err) {
				return dbmodels.Article{}, models.NewValidationError("journal_id", "journal not found")
			}
			return dbmodels.Article{}, err
		}
		rec.Journal = journal
	}
	rec.Clean()
	if err := rec.Validate(now, i.bounds); err != nil {
		return dbmodels.Article{}, err
	}
	return rec, nil
}
