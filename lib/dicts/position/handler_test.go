package positionprovider

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"academic-records-backend/models"
	dictapimodels "academic-records-backend/models/api/dict"
	dbmodels "academic-records-backend/models/db"
)

type fakeStore struct {
	positions map[string]dbmodels.Position
	groups    map[string]dbmodels.EmployeeGroup
}

func (f *fakeStore) Create(rec dbmodels.Position) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}
	rec.ID = uuid.NewString()
	f.positions[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Position, error) {
	rec, ok := f.positions[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) List(search string) ([]dbmodels.Position, error) {
	list := []dbmodels.Position{}
	for _, rec := range f.positions {
		list = append(list, rec)
	}
	return list, nil
}

func (f *fakeStore) Update(rec dbmodels.Position) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	f.positions[rec.ID] = rec
	return nil
}

func (f *fakeStore) Delete(id string) error {
	delete(f.positions, id)
	return nil
}

func (f *fakeStore) GetGroups(ids []string) ([]dbmodels.EmployeeGroup, error) {
	list := []dbmodels.EmployeeGroup{}
	for _, id := range ids {
		if group, ok := f.groups[id]; ok {
			list = append(list, group)
		}
	}
	return list, nil
}

func TestPositionProvider(t *testing.T) {
	group := func(name string, teachers models.YesNo) dbmodels.EmployeeGroup {
		return dbmodels.EmployeeGroup{BaseModel: dbmodels.BaseModel{ID: uuid.NewString()}, Name: name, Abbr: name, Teachers: teachers}
	}
	research := group("research", models.Yes)
	didactic := group("didactic", models.Yes)
	admin := group("administration", models.No)
	fake := &fakeStore{
		positions: map[string]dbmodels.Position{},
		groups: map[string]dbmodels.EmployeeGroup{
			research.ID: research,
			didactic.ID: didactic,
			admin.ID:    admin,
		},
	}
	provider := NewProvider(fake)

	t.Run("teacher position", func(t *testing.T) {
		id, err := provider.Create(dictapimodels.PositionData{Name: "professor", GroupIDs: []string{research.ID, didactic.ID}})
		require.NoError(t, err)
		item, err := provider.Get(id)
		require.NoError(t, err)
		require.True(t, item.IsTeacher)
		require.Len(t, item.Groups, 2)
	})
	t.Run("position without groups", func(t *testing.T) {
		id, err := provider.Create(dictapimodels.PositionData{Name: "visiting"})
		require.NoError(t, err)
		item, err := provider.Get(id)
		require.NoError(t, err)
		require.True(t, item.IsTeacher)
	})
	t.Run("mixed groups are rejected", func(t *testing.T) {
		_, err := provider.Create(dictapimodels.PositionData{Name: "lecturer", GroupIDs: []string{research.ID, admin.ID}})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "groups", vErr.Field)
	})
	t.Run("unknown group", func(t *testing.T) {
		_, err := provider.Create(dictapimodels.PositionData{Name: "lecturer", GroupIDs: []string{uuid.NewString()}})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "group_ids", vErr.Field)
	})
	t.Run("update replaces groups", func(t *testing.T) {
		id, err := provider.Create(dictapimodels.PositionData{Name: "assistant", GroupIDs: []string{research.ID}})
		require.NoError(t, err)
		require.NoError(t, provider.Update(id, dictapimodels.PositionData{Name: "clerk", GroupIDs: []string{admin.ID}}))
		item, err := provider.Get(id)
		require.NoError(t, err)
		require.Equal(t, "clerk", item.Name)
		require.False(t, item.IsTeacher)
	})
}
