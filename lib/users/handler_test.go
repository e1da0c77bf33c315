package usersprovider

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	authutils "academic-records-backend/lib/utils/auth-utils"
	"academic-records-backend/models"
	usersapimodels "academic-records-backend/models/api/users"
	dbmodels "academic-records-backend/models/db"
)

type fakeStore struct {
	users map[string]dbmodels.User
}

func (f *fakeStore) Create(rec dbmodels.User) (string, error) {
	rec.Clean()
	if err := rec.Validate(); err != nil {
		return "", err
	}
	rec.ID = uuid.NewString()
	f.users[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.User, error) {
	rec, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) GetByUsername(username string) (*dbmodels.User, error) {
	for _, rec := range f.users {
		if rec.Username == username {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetByIDs(ids []string) ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	for _, id := range ids {
		if rec, ok := f.users[id]; ok {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeStore) List(filter usersapimodels.UserFilter) ([]dbmodels.User, int64, error) {
	list := []dbmodels.User{}
	for _, rec := range f.users {
		list = append(list, rec)
	}
	return list, int64(len(list)), nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.users[id]
	if password, ok := updMap["password"].(string); ok {
		rec.Password = password
	}
	rec.Username = updMap["username"].(string)
	f.users[id] = rec
	return nil
}

func (f *fakeStore) SetActive(ids []string, active bool) error {
	for _, id := range ids {
		rec := f.users[id]
		rec.IsActive = active
		f.users[id] = rec
	}
	return nil
}

func (f *fakeStore) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeStore) UsernameTaken(username, excludeID string) (bool, error) {
	for id, rec := range f.users {
		if id != excludeID && rec.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) SendEMail(to, subject, message string) error {
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeMailer) Configured() bool { return true }

func TestUsersProvider(t *testing.T) {
	fake := &fakeStore{users: map[string]dbmodels.User{}}
	mailer := &fakeMailer{}
	provider := NewProvider(fake, mailer)
	inactive := false

	create := func(t *testing.T, request usersapimodels.UserData) string {
		request.Password = "s3cret-pass"
		id, err := provider.Create(request)
		require.NoError(t, err)
		return id
	}

	t.Run("create hashes the password", func(t *testing.T) {
		id := create(t, usersapimodels.UserData{Username: "jkowalski", FirstName: "Jan", LastName: "Kowalski"})
		rec := fake.users[id]
		require.True(t, authutils.CheckPassword(rec.Password, "s3cret-pass"))
		require.Equal(t, "jkowalski", rec.Slug)
		require.True(t, rec.IsActive)
		item, err := provider.Get(id)
		require.NoError(t, err)
		require.Equal(t, "Kowalski J.", item.ShortName)
		require.True(t, item.MissingData)
	})
	t.Run("create requires password", func(t *testing.T) {
		_, err := provider.Create(usersapimodels.UserData{Username: "nopass"})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "password", vErr.Field)
	})
	t.Run("duplicate username", func(t *testing.T) {
		_, err := provider.Create(usersapimodels.UserData{Username: "jkowalski", Password: "another-pass"})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "username", vErr.Field)
	})
	t.Run("activate", func(t *testing.T) {
		a := create(t, usersapimodels.UserData{Username: "anowak", Email: "anowak@example.com", IsActive: &inactive})
		b := create(t, usersapimodels.UserData{Username: "bnowak"})
		result, err := provider.Activate([]string{a, b})
		require.NoError(t, err)
		require.Equal(t, "Activated the selected users.", result.Message)
		require.Equal(t, []string{a}, result.Affected)
		require.True(t, fake.users[a].IsActive)
		require.Equal(t, []string{"anowak@example.com"}, mailer.sent)

		result, err = provider.Activate([]string{b})
		require.NoError(t, err)
		require.Equal(t, "Activated the selected user.", result.Message)
		require.Empty(t, result.Affected)
	})
	t.Run("deactivate", func(t *testing.T) {
		root := create(t, usersapimodels.UserData{Username: "root", IsSuperuser: true, IsStaff: true})
		regular := create(t, usersapimodels.UserData{Username: "regular"})

		_, err := provider.Deactivate([]string{root})
		vErr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Equal(t, "superusers cannot be deactivated: root", vErr.Message)
		require.True(t, fake.users[root].IsActive)

		result, err := provider.Deactivate([]string{root, regular})
		require.NoError(t, err)
		require.Equal(t, "Deactivated 1 of 2 selected users. Superusers cannot be deactivated: root.", result.Message)
		require.False(t, fake.users[regular].IsActive)
		require.True(t, fake.users[root].IsActive)

		other := create(t, usersapimodels.UserData{Username: "other"})
		result, err = provider.Deactivate([]string{other})
		require.NoError(t, err)
		require.Equal(t, "Deactivated the selected user.", result.Message)
	})
	t.Run("update keeps password when empty", func(t *testing.T) {
		id := create(t, usersapimodels.UserData{Username: "keeper"})
		before := fake.users[id].Password
		require.NoError(t, provider.Update(id, usersapimodels.UserData{Username: "keeper2"}))
		require.Equal(t, before, fake.users[id].Password)
		require.Equal(t, "keeper2", fake.users[id].Username)
	})
}
