package authorstatusprovider

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"academic-records-backend/models"
	dictapimodels "academic-records-backend/models/api/dict"
	dbmodels "academic-records-backend/models/db"
)

type fakeStore struct {
	mu   sync.Mutex
	recs map[string]dbmodels.AuthorStatus
}

func newFakeStore() *fakeStore {
	return &fakeStore{recs: map[string]dbmodels.AuthorStatus{}}
}

func (f *fakeStore) Create(rec dbmodels.AuthorStatus) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}
	// widen the window between the check and the write
	time.Sleep(5 * time.Millisecond)
	f.mu.Lock()
	defer f.mu.Unlock()
	rec.ID = uuid.NewString()
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.AuthorStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) List(search string, group models.AuthorGroup) ([]dbmodels.AuthorStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []dbmodels.AuthorStatus{}
	for _, rec := range f.recs {
		if group == "" || rec.Group == group {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeStore) ListDefaults(group models.AuthorGroup, excludeID string) ([]dbmodels.AuthorStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []dbmodels.AuthorStatus{}
	for _, rec := range f.recs {
		if rec.Group == group && rec.IsDefault() && rec.ID != excludeID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := f.recs[id]
	rec.Name = updMap["name"].(string)
	rec.Abbr = updMap["abbr"].(string)
	rec.Group = updMap["group"].(models.AuthorGroup)
	rec.Default = updMap["default"].(models.YesNo)
	f.recs[id] = rec
	return nil
}

func (f *fakeStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.recs, id)
	return nil
}

func TestAuthorStatusProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("one default per group", func(t *testing.T) {
		provider := NewProvider(newFakeStore())
		_, err := provider.Create(ctx, dictapimodels.AuthorStatusData{Name: "author", Abbr: "A", Group: models.AuthorsEmployees, Default: models.Yes})
		require.NoError(t, err)

		_, err = provider.Create(ctx, dictapimodels.AuthorStatusData{Name: "co-author", Abbr: "CA", Group: models.AuthorsEmployees, Default: models.Yes})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "default", vErr.Field)
		require.Contains(t, vErr.Message, `"author (A)"`)

		// other group and non-default statuses are unaffected
		_, err = provider.Create(ctx, dictapimodels.AuthorStatusData{Name: "external", Abbr: "E", Group: models.AuthorsNotEmployees, Default: models.Yes})
		require.NoError(t, err)
		_, err = provider.Create(ctx, dictapimodels.AuthorStatusData{Name: "editor", Abbr: "ED", Group: models.AuthorsEmployees})
		require.NoError(t, err)

		defaults, err := provider.Defaults(models.AuthorsEmployees)
		require.NoError(t, err)
		require.Len(t, defaults, 1)
	})
	t.Run("updating the default itself keeps it", func(t *testing.T) {
		provider := NewProvider(newFakeStore())
		id, err := provider.Create(ctx, dictapimodels.AuthorStatusData{Name: "author", Abbr: "A", Group: models.AuthorsEmployees, Default: models.Yes})
		require.NoError(t, err)
		err = provider.Update(ctx, id, dictapimodels.AuthorStatusData{Name: "main author", Abbr: "MA", Group: models.AuthorsEmployees, Default: models.Yes})
		require.NoError(t, err)
		item, err := provider.Get(id)
		require.NoError(t, err)
		require.Equal(t, `main author (MA) for group "employee authors" (default)`, item.Label)
	})
	t.Run("concurrent defaults", func(t *testing.T) {
		provider := NewProvider(newFakeStore())
		wg := sync.WaitGroup{}
		errs := make(chan error, 4)
		for n := 0; n < 4; n++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, err := provider.Create(ctx, dictapimodels.AuthorStatusData{
					Name: "status", Abbr: "S", Group: models.AuthorsNotEmployees, Default: models.Yes,
				})
				errs <- err
			}(n)
		}
		wg.Wait()
		close(errs)
		succeeded := 0
		for err := range errs {
			if err == nil {
				succeeded++
			}
		}
		require.Equal(t, 1, succeeded)
	})
}
