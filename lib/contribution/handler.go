package contributionprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	authorprovider "academic-records-backend/lib/author"
	"academic-records-backend/lib/contribution/store"
	authorstatusprovider "academic-records-backend/lib/dicts/author-status"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	contributionapimodels "academic-records-backend/models/api/contribution"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request contributionapimodels.ContributionData) (id string, err error)
	Update(id string, request contributionapimodels.ContributionData) error
	Get(id string) (item contributionapimodels.ContributionView, err error)
	List(filter contributionapimodels.ContributionFilter) (list []contributionapimodels.ContributionView, rowCount int64, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB), authorprovider.Instance, authorstatusprovider.Instance)
}

func NewProvider(contributionStore store.Provider, authors authorprovider.Provider, statuses authorstatusprovider.Provider) Provider {
	instance := impl{
		store:    contributionStore,
		authors:  authors,
		statuses: statuses,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"authorprovider", instance.authors,
		"authorstatusprovider", instance.statuses,
	)
	return instance
}

type impl struct {
	store    store.Provider
	authors  authorprovider.Provider
	statuses authorstatusprovider.Provider
}

func (i impl) Create(request contributionapimodels.ContributionData) (id string, err error) {
	rec, err := i.build(request)
	if err != nil {
		return "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("content_type", rec.ContentType).
		WithField("content_id", rec.ContentID).
		Info("contribution created")
	return id, nil
}

func (i impl) Update(id string, request contributionapimodels.ContributionData) error {
	existing, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.Wrap(models.ErrNotFound, "contribution not found")
	}
	rec, err := i.build(request)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"content_type":     rec.ContentType,
		"content_id":       rec.ContentID,
		"author_id":        rec.AuthorID,
		"percentage":       rec.Percentage,
		"author_status_id": rec.AuthorStatusID,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("contribution updated")
	return nil
}

func (i impl) Get(id string) (item contributionapimodels.ContributionView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return contributionapimodels.ContributionView{}, err
	}
	if rec == nil {
		return contributionapimodels.ContributionView{}, errors.Wrap(models.ErrNotFound, "contribution not found")
	}
	titles, err := i.store.ElementTitles(rec.Kind(), []string{rec.ContentID})
	if err != nil {
		return contributionapimodels.ContributionView{}, err
	}
	return contributionapimodels.ContributionConvert(*rec, titles[rec.ContentID]), nil
}

func (i impl) List(filter contributionapimodels.ContributionFilter) (list []contributionapimodels.ContributionView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	ids := map[models.ElementKind][]string{}
	for _, rec := range recList {
		ids[rec.Kind()] = append(ids[rec.Kind()], rec.ContentID)
	}
	titles := map[string]string{}
	for kind, kindIDs := range ids {
		kindTitles, err := i.store.ElementTitles(kind, kindIDs)
		if err != nil {
			return nil, 0, err
		}
		for id, title := range kindTitles {
			titles[id] = title
		}
	}
	list = make([]contributionapimodels.ContributionView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, contributionapimodels.ContributionConvert(rec, titles[rec.ContentID]))
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("contribution deleted")
	return nil
}

// build checks the element, then the author and the status, in this order.
func (i impl) build(request contributionapimodels.ContributionData) (dbmodels.Contribution, error) {
	if err := request.Validate(); err != nil {
		return dbmodels.Contribution{}, err
	}
	rec := dbmodels.Contribution{
		ContentType: string(request.ContentType),
		ContentID:   request.ContentID,
		AuthorID:    request.AuthorID,
		Percentage:  request.Percentage,
	}
	if err := rec.Validate(); err != nil {
		return dbmodels.Contribution{}, err
	}
	exists, err := i.store.ElementExists(rec.Kind(), rec.ContentID)
	if err != nil {
		return dbmodels.Contribution{}, err
	}
	if !exists {
		return dbmodels.Contribution{}, models.NewValidationErrorf("content_id",
			"the selected %s does not exist", rec.Kind().ToHuman())
	}
	author, err := i.authors.GetRec(rec.AuthorID)
	if err != nil {
		if models.IsNotFound(err) {
			return dbmodels.Contribution{}, models.NewValidationError("author_id", "author not found")
		}
		return dbmodels.Contribution{}, err
	}
	rec.Author = author

	var explicit *dbmodels.AuthorStatus
	var defaults []dbmodels.AuthorStatus
	if request.AuthorStatusID != nil && *request.AuthorStatusID != "" {
		explicit, err = i.statuses.GetRec(*request.AuthorStatusID)
		if err != nil {
			if models.IsNotFound(err) {
				return dbmodels.Contribution{}, models.NewValidationError("author_status_id", "author status not found")
			}
			return dbmodels.Contribution{}, err
		}
	} else {
		defaults, err = i.statuses.Defaults(author.Group())
		if err != nil {
			return dbmodels.Contribution{}, err
		}
	}
	status, err := dbmodels.ResolveAuthorStatus(*author, explicit, defaults)
	if err != nil {
		return dbmodels.Contribution{}, err
	}
	rec.AuthorStatusID = &status.ID
	rec.AuthorStatus = &status
	return rec, nil
}
