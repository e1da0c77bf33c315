package usersload

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"academic-records-backend/lib/users/store"
	"academic-records-backend/models"
	dbmodels "academic-records-backend/models/db"
)

type fakeStore struct {
	store.Provider
	users map[string]dbmodels.User
}

func (f *fakeStore) Create(rec dbmodels.User) (string, error) {
	rec.Clean()
	if err := rec.Validate(); err != nil {
		return "", err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	f.users[rec.Username] = rec
	return rec.ID, nil
}

func (f *fakeStore) UsernameTaken(username, excludeID string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

func workbook(t *testing.T, sheet string, rows ...[]interface{}) *bytes.Buffer {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func header() []interface{} {
	result := make([]interface{}, 0, len(Columns))
	for _, column := range Columns {
		result = append(result, column)
	}
	return result
}

func TestUsersLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("load with defaults and duplicates", func(t *testing.T) {
		fake := &fakeStore{users: map[string]dbmodels.User{"taken": {Username: "taken"}}}
		provider := NewProvider(fake, nil, "accounts.user")
		id := uuid.NewString()
		data := workbook(t, "accounts.user",
			header(),
			[]interface{}{id, "jkowalski", "secret-1", "Jan", "Kowalski", "M", "jan@example.com", "TRUE", "FALSE"},
			[]interface{}{"", "anowak", "secret-2", "", "", "U", "", "", ""},
			[]interface{}{"", "taken", "secret-3"},
			[]interface{}{"", "bad", "secret-4", "", "", "X"},
		)
		result, err := provider.Load(ctx, data, "users.xlsx", "", "")
		require.NoError(t, err)
		require.Equal(t, []string{"jkowalski", "anowak"}, result.Created)
		require.Len(t, result.Failures, 2)
		require.Equal(t, 4, result.Failures[0].Row)
		require.Contains(t, result.Failures[0].Error, "DB integrity issues")
		require.Equal(t, "bad", result.Failures[1].Username)

		jan := fake.users["jkowalski"]
		require.Equal(t, id, jan.ID)
		require.True(t, jan.IsStaff)
		require.False(t, jan.IsSuperuser)
		require.NotEqual(t, "secret-1", jan.Password)

		anna := fake.users["anowak"]
		require.Equal(t, models.SexNotGiven, anna.Sex)
		require.False(t, anna.IsStaff)
		require.Equal(t, "anowak", anna.Slug)
	})
	t.Run("integer ids are replaced", func(t *testing.T) {
		fake := &fakeStore{users: map[string]dbmodels.User{}}
		provider := NewProvider(fake, nil, "accounts.user")
		data := workbook(t, "accounts.user",
			header(),
			[]interface{}{"1", "jkowalski", "secret-1"},
			[]interface{}{"2", "anowak", "secret-2"},
		)
		result, err := provider.Load(ctx, data, "users.xlsx", "", "")
		require.NoError(t, err)
		require.Empty(t, result.Failures)
		require.Equal(t, []string{"jkowalski", "anowak"}, result.Created)
		_, err = uuid.Parse(fake.users["jkowalski"].ID)
		require.NoError(t, err)
	})
	t.Run("missing columns", func(t *testing.T) {
		provider := NewProvider(&fakeStore{users: map[string]dbmodels.User{}}, nil, "accounts.user")
		data := workbook(t, "accounts.user", []interface{}{"id", "username", "password"})
		_, err := provider.Load(ctx, data, "users.xlsx", "", "")
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.True(t, strings.HasSuffix(vErr.Message, "first_name, last_name, sex, email, is_staff, is_superuser"))
	})
	t.Run("password required on every row", func(t *testing.T) {
		fake := &fakeStore{users: map[string]dbmodels.User{}}
		provider := NewProvider(fake, nil, "accounts.user")
		data := workbook(t, "accounts.user",
			header(),
			[]interface{}{"", "first", "secret-1"},
			[]interface{}{"", "second", ""},
		)
		_, err := provider.Load(ctx, data, "users.xlsx", "", "")
		_, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Empty(t, fake.users)
	})
	t.Run("unknown sheet", func(t *testing.T) {
		provider := NewProvider(&fakeStore{users: map[string]dbmodels.User{}}, nil, "accounts.user")
		data := workbook(t, "people", header())
		_, err := provider.Load(ctx, data, "users.xlsx", "", "")
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "sheet", vErr.Field)
	})
}
