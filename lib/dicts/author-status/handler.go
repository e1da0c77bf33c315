package authorstatusprovider

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/dicts/author-status/store"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/lib/utils/lock"
	"academic-records-backend/models"
	dictapimodels "academic-records-backend/models/api/dict"
	dbmodels "academic-records-backend/models/db"
)

const defaultLockWait = 5 * time.Second

type Provider interface {
	Create(ctx context.Context, request dictapimodels.AuthorStatusData) (id string, err error)
	Update(ctx context.Context, id string, request dictapimodels.AuthorStatusData) error
	Get(id string) (item dictapimodels.AuthorStatusView, err error)
	List(filter dictapimodels.AuthorStatusFilter) (list []dictapimodels.AuthorStatusView, err error)
	Delete(id string) error
	// GetRec and Defaults serve the contribution status resolution.
	GetRec(id string) (*dbmodels.AuthorStatus, error)
	Defaults(group models.AuthorGroup) ([]dbmodels.AuthorStatus, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB))
}

func NewProvider(statusStore store.Provider) Provider {
	instance := impl{
		store: statusStore,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(ctx context.Context, request dictapimodels.AuthorStatusData) (id string, err error) {
	rec := dbmodels.AuthorStatus{
		Name:    request.Name,
		Abbr:    request.Abbr,
		Group:   request.Group,
		Default: defaultOrNo(request.Default),
	}
	if err = rec.Validate(); err != nil {
		return "", err
	}
	err = i.withDefaultCheck(ctx, rec, func() error {
		id, err = i.store.Create(rec)
		return err
	})
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("status", rec.String()).
		Info("author status created")
	return id, nil
}

func (i impl) Update(ctx context.Context, id string, request dictapimodels.AuthorStatusData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "author status not found")
	}
	rec.Name = request.Name
	rec.Abbr = request.Abbr
	rec.Group = request.Group
	rec.Default = defaultOrNo(request.Default)
	if err = rec.Validate(); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":    rec.Name,
		"abbr":    rec.Abbr,
		"group":   rec.Group,
		"default": rec.Default,
	}
	err = i.withDefaultCheck(ctx, *rec, func() error {
		return i.store.Update(id, updMap)
	})
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("author status updated")
	return nil
}

// withDefaultCheck runs save while no other default status of the same group
// can be written, failing when the group already has one.
func (i impl) withDefaultCheck(ctx context.Context, rec dbmodels.AuthorStatus, save func() error) error {
	if !rec.IsDefault() {
		return save()
	}
	return lock.WithDelay(ctx, "author-status-default-"+string(rec.Group), defaultLockWait, func() error {
		existing, err := i.store.ListDefaults(rec.Group, rec.ID)
		if err != nil {
			return err
		}
		if len(existing) != 0 {
			return dbmodels.DuplicateDefaultStatusError(rec.Group, existing[0])
		}
		return save()
	})
}

func (i impl) Get(id string) (item dictapimodels.AuthorStatusView, err error) {
	rec, err := i.GetRec(id)
	if err != nil {
		return dictapimodels.AuthorStatusView{}, err
	}
	return dictapimodels.AuthorStatusConvert(*rec), nil
}

func (i impl) GetRec(id string) (*dbmodels.AuthorStatus, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "author status not found")
	}
	return rec, nil
}

func (i impl) Defaults(group models.AuthorGroup) ([]dbmodels.AuthorStatus, error) {
	return i.store.ListDefaults(group, "")
}

func (i impl) List(filter dictapimodels.AuthorStatusFilter) (list []dictapimodels.AuthorStatusView, err error) {
	recList, err := i.store.List(filter.Search, filter.Group)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.AuthorStatusView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.AuthorStatusConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("author status deleted")
	return nil
}

func defaultOrNo(value models.YesNo) models.YesNo {
	if value == "" {
		return models.No
	}
	return value
}
