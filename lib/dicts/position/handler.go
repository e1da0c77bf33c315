package positionprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/dicts/position/store"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	dictapimodels "academic-records-backend/models/api/dict"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.PositionData) (id string, err error)
	Update(id string, request dictapimodels.PositionData) error
	Get(id string) (item dictapimodels.PositionView, err error)
	List(filter dictapimodels.DictFilter) (list []dictapimodels.PositionView, err error)
	Delete(id string) error
	// GetRec returns the position with its groups for the employment checks.
	GetRec(id string) (*dbmodels.Position, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB))
}

func NewProvider(positionStore store.Provider) Provider {
	instance := impl{
		store: positionStore,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store store.Provider
}

func (i impl) Create(request dictapimodels.PositionData) (id string, err error) {
	groups, err := i.getGroups(request.GroupIDs)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Position{
		Name:   request.Name,
		Groups: groups,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("position_name", rec.Name).
		Info("position created")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.PositionData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "position not found")
	}
	groups, err := i.getGroups(request.GroupIDs)
	if err != nil {
		return err
	}
	rec.Name = request.Name
	rec.Groups = groups
	if err = i.store.Update(*rec); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("position updated")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.PositionView, err error) {
	rec, err := i.GetRec(id)
	if err != nil {
		return dictapimodels.PositionView{}, err
	}
	return dictapimodels.PositionConvert(*rec), nil
}

func (i impl) GetRec(id string) (*dbmodels.Position, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "position not found")
	}
	return rec, nil
}

func (i impl) List(filter dictapimodels.DictFilter) (list []dictapimodels.PositionView, err error) {
	recList, err := i.store.List(filter.Search)
	if err != nil {
		return nil, err
	}
	list = make([]dictapimodels.PositionView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, dictapimodels.PositionConvert(rec))
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("position deleted")
	return nil
}

func (i impl) getGroups(ids []string) ([]dbmodels.EmployeeGroup, error) {
	groups, err := i.store.GetGroups(ids)
	if err != nil {
		return nil, err
	}
	if len(groups) != len(uniq(ids)) {
		return nil, models.NewValidationError("group_ids", "some of the selected groups do not exist")
	}
	return groups, nil
}

func uniq(ids []string) map[string]struct{} {
	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result
}
