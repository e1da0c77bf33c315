package authprovider

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/users/store"
	authutils "academic-records-backend/lib/utils/auth-utils"
	initchecker "academic-records-backend/lib/utils/init-checker"
	usersapimodels "academic-records-backend/models/api/users"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Provider interface {
	Login(request usersapimodels.LoginRequest) (response usersapimodels.LoginResponse, err error)
	Me(userID string) (item usersapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB))
}

func NewProvider(userStore store.Provider) Provider {
	instance := impl{
		store: userStore,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store store.Provider
}

// Login admits active staff users only.
func (i impl) Login(request usersapimodels.LoginRequest) (response usersapimodels.LoginResponse, err error) {
	logger := log.WithField("username", request.Username)
	user, err := i.store.GetByUsername(request.Username)
	if err != nil {
		logger.WithError(err).Error("failed to find the user")
		return usersapimodels.LoginResponse{}, err
	}
	if user == nil {
		logger.Debug("user not found")
		return usersapimodels.LoginResponse{}, ErrInvalidCredentials
	}
	if !authutils.CheckPassword(user.Password, request.Password) {
		logger.Debug("password check failed")
		return usersapimodels.LoginResponse{}, ErrInvalidCredentials
	}
	if !user.IsActive || !user.IsStaff {
		logger.Debug("user is not an active staff member")
		return usersapimodels.LoginResponse{}, ErrInvalidCredentials
	}
	token, err := authutils.GetToken(user.ID, user.FullName(), user.IsStaff, user.IsSuperuser)
	if err != nil {
		logger.WithError(err).Error("failed to sign the token")
		return usersapimodels.LoginResponse{}, err
	}
	now := time.Now()
	if err = i.store.Update(user.ID, map[string]interface{}{"last_login": now}); err != nil {
		logger.WithError(err).Error("failed to update the last login date")
	}
	user.LastLogin = &now
	return usersapimodels.LoginResponse{
		Token: token,
		User:  usersapimodels.UserConvert(*user),
	}, nil
}

func (i impl) Me(userID string) (item usersapimodels.UserView, err error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if user == nil {
		return usersapimodels.UserView{}, ErrInvalidCredentials
	}
	return usersapimodels.UserConvert(*user), nil
}
