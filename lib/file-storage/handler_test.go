package filestorage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"academic-records-backend/models"
	dbmodels "academic-records-backend/models/db"
)

type fakeStore struct {
	files map[string]dbmodels.ArchivedFile
}

func (f *fakeStore) Save(rec dbmodels.ArchivedFile) (string, error) {
	rec.ID = uuid.NewString()
	f.files[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.ArchivedFile, error) {
	rec, ok := f.files[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) List(kind dbmodels.ArchiveKind) ([]dbmodels.ArchivedFile, error) {
	list := []dbmodels.ArchivedFile{}
	for _, rec := range f.files {
		if kind == "" || rec.Kind == kind {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeObjects map[string][]byte

func (f fakeObjects) Put(ctx context.Context, name, contentType string, data []byte) error {
	f[name] = data
	return nil
}

func (f fakeObjects) Get(ctx context.Context, name string) ([]byte, error) {
	return f[name], nil
}

func TestFileStorage(t *testing.T) {
	objects := fakeObjects{}
	provider := newProvider(&fakeStore{files: map[string]dbmodels.ArchivedFile{}}, objects).(impl)
	provider.now = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }

	t.Run("archive and read back", func(t *testing.T) {
		id, err := provider.Archive(context.Background(), dbmodels.ArchiveUsersLoad, "../users.xlsx", "application/octet-stream", []byte("data"), "")
		require.NoError(t, err)
		rec, data, err := provider.GetFile(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, []byte("data"), data)
		require.Nil(t, rec.UserID)
		require.EqualValues(t, 4, rec.Size)
		require.True(t, strings.HasPrefix(rec.ObjectName, "users-load/2024/05/10/"))
		require.True(t, strings.HasSuffix(rec.ObjectName, "-users.xlsx"))
	})
	t.Run("list by kind", func(t *testing.T) {
		_, err := provider.Archive(context.Background(), dbmodels.ArchiveEmployeesExport, "employees.xlsx", "application/octet-stream", []byte("x"), uuid.NewString())
		require.NoError(t, err)
		list, err := provider.List(dbmodels.ArchiveEmployeesExport)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.NotNil(t, list[0].UserID)
	})
	t.Run("missing file", func(t *testing.T) {
		_, _, err := provider.GetFile(context.Background(), uuid.NewString())
		require.True(t, models.IsNotFound(err))
	})
}
