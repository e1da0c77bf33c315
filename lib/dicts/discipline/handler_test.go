package disciplineprovider

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"academic-records-backend/models"
	dictapimodels "academic-records-backend/models/api/dict"
	dbmodels "academic-records-backend/models/db"
)

type fakeStore struct {
	recs map[string]dbmodels.Discipline
}

func (f *fakeStore) Create(rec dbmodels.Discipline) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}
	rec.ID = uuid.NewString()
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Discipline, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) List(search string) ([]dbmodels.Discipline, error) {
	list := []dbmodels.Discipline{}
	for _, rec := range f.recs {
		list = append(list, rec)
	}
	return list, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	rec.Name = updMap["name"].(string)
	rec.Abbr = updMap["abbr"].(string)
	rec.Domain = updMap["domain"].(models.DisciplineDomain)
	f.recs[id] = rec
	return nil
}

func (f *fakeStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func TestDisciplineProvider(t *testing.T) {
	provider := NewProvider(&fakeStore{recs: map[string]dbmodels.Discipline{}})

	id, err := provider.Create(dictapimodels.DisciplineData{Name: "computer science", Abbr: "CS"})
	require.NoError(t, err)

	t.Run("domain defaults to sciences", func(t *testing.T) {
		item, err := provider.Get(id)
		require.NoError(t, err)
		require.Equal(t, models.DomainSciences, item.Domain)
		require.Equal(t, "computer science (CS); natural and exact sciences", item.Label)
	})
	t.Run("lowercase abbreviation is rejected", func(t *testing.T) {
		_, err := provider.Create(dictapimodels.DisciplineData{Name: "mathematics", Abbr: "ma"})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "abbr", vErr.Field)
	})
	t.Run("update", func(t *testing.T) {
		err := provider.Update(id, dictapimodels.DisciplineData{Name: "automation", Abbr: "AU", Domain: models.DomainEngineering})
		require.NoError(t, err)
		item, err := provider.Get(id)
		require.NoError(t, err)
		require.Equal(t, "automation (AU); engineering and technical sciences", item.Label)
	})
	t.Run("delete", func(t *testing.T) {
		require.NoError(t, provider.Delete(id))
		_, err := provider.Get(id)
		require.True(t, models.IsNotFound(err))
		list, err := provider.List(dictapimodels.DictFilter{})
		require.NoError(t, err)
		require.Empty(t, list)
	})
}
