package authprovider

import (
	"testing"

	"github.com/stretchr/testify/require"

	"academic-records-backend/config"
	"academic-records-backend/lib/users/store"
	authutils "academic-records-backend/lib/utils/auth-utils"
	usersapimodels "academic-records-backend/models/api/users"
	dbmodels "academic-records-backend/models/db"
)

type fakeStore struct {
	store.Provider
	users   map[string]dbmodels.User
	updated map[string]map[string]interface{}
}

func (f *fakeStore) GetByUsername(username string) (*dbmodels.User, error) {
	rec, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	f.updated[id] = updMap
	return nil
}

func TestLogin(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60

	hash, err := authutils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	user := func(id string, active, staff bool) dbmodels.User {
		return dbmodels.User{BaseModel: dbmodels.BaseModel{ID: id}, Username: id, Password: hash, IsActive: active, IsStaff: staff}
	}
	fake := &fakeStore{
		users: map[string]dbmodels.User{
			"staff":    user("staff", true, true),
			"inactive": user("inactive", false, true),
			"regular":  user("regular", true, false),
		},
		updated: map[string]map[string]interface{}{},
	}
	provider := NewProvider(fake)

	t.Run("active staff", func(t *testing.T) {
		resp, err := provider.Login(usersapimodels.LoginRequest{Username: "staff", Password: "s3cret-pass"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.NotNil(t, resp.User.LastLogin)
		require.Contains(t, fake.updated["staff"], "last_login")
	})
	t.Run("wrong password", func(t *testing.T) {
		_, err := provider.Login(usersapimodels.LoginRequest{Username: "staff", Password: "wrong"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
	t.Run("inactive user", func(t *testing.T) {
		_, err := provider.Login(usersapimodels.LoginRequest{Username: "inactive", Password: "s3cret-pass"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
	t.Run("not staff", func(t *testing.T) {
		_, err := provider.Login(usersapimodels.LoginRequest{Username: "regular", Password: "s3cret-pass"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
	t.Run("unknown user", func(t *testing.T) {
		_, err := provider.Login(usersapimodels.LoginRequest{Username: "ghost", Password: "s3cret-pass"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
