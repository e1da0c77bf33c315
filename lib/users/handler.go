package usersprovider

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/smtp"
	"academic-records-backend/lib/users/store"
	authutils "academic-records-backend/lib/utils/auth-utils"
	"academic-records-backend/lib/utils/helpers"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	usersapimodels "academic-records-backend/models/api/users"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request usersapimodels.UserData) (id string, err error)
	Update(id string, request usersapimodels.UserData) error
	Get(id string) (item usersapimodels.UserView, err error)
	List(filter usersapimodels.UserFilter) (list []usersapimodels.UserView, rowCount int64, err error)
	Delete(id string) error
	Activate(ids []string) (result apimodels.ActionResult, err error)
	Deactivate(ids []string) (result apimodels.ActionResult, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB), smtp.Instance)
}

// NewProvider accepts a nil mailer; activation notices are skipped then.
func NewProvider(userStore store.Provider, mailer smtp.Provider) Provider {
	instance := impl{
		store:  userStore,
		mailer: mailer,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store  store.Provider
	mailer smtp.Provider
}

func (i impl) Create(request usersapimodels.UserData) (id string, err error) {
	if request.Password == "" {
		return "", dbmodels.NewRequiredError("password")
	}
	if err = i.checkUsername(request.Username, ""); err != nil {
		return "", err
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return "", err
	}
	rec := dbmodels.User{
		Username:    strings.TrimSpace(request.Username),
		Password:    hash,
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       request.Email,
		Sex:         request.Sex,
		IsActive:    request.IsActive == nil || *request.IsActive,
		IsStaff:     request.IsStaff,
		IsSuperuser: request.IsSuperuser,
		DateJoined:  time.Now(),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("username", rec.Username).
		Info("user created")
	return id, nil
}

func (i impl) Update(id string, request usersapimodels.UserData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "user not found")
	}
	if err = i.checkUsername(request.Username, id); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"username":     strings.TrimSpace(request.Username),
		"first_name":   request.FirstName,
		"last_name":    request.LastName,
		"email":        request.Email,
		"sex":          request.Sex,
		"is_staff":     request.IsStaff,
		"is_superuser": request.IsSuperuser,
	}
	if request.IsActive != nil {
		updMap["is_active"] = *request.IsActive
	}
	if request.Password != "" {
		hash, err := authutils.HashPassword(request.Password)
		if err != nil {
			return err
		}
		updMap["password"] = hash
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("user updated")
	return nil
}

func (i impl) Get(id string) (item usersapimodels.UserView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if rec == nil {
		return usersapimodels.UserView{}, errors.Wrap(models.ErrNotFound, "user not found")
	}
	return usersapimodels.UserConvert(*rec), nil
}

func (i impl) List(filter usersapimodels.UserFilter) (list []usersapimodels.UserView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]usersapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, usersapimodels.UserConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("user deleted")
	return nil
}

// Activate changes only the inactive users of the selection.
func (i impl) Activate(ids []string) (result apimodels.ActionResult, err error) {
	users, err := i.store.GetByIDs(ids)
	if err != nil {
		return apimodels.ActionResult{}, err
	}
	inactive := []dbmodels.User{}
	for _, user := range users {
		if !user.IsActive {
			inactive = append(inactive, user)
		}
	}
	affected := userIDs(inactive)
	if err = i.store.SetActive(affected, true); err != nil {
		return apimodels.ActionResult{}, err
	}
	log.WithField("affected", len(affected)).Info("users activated")
	i.notifyActivated(inactive)
	return apimodels.ActionResult{
		Message:  helpers.Plural(len(users), "Activated the selected user.", "Activated the selected users."),
		Affected: affected,
	}, nil
}

// Deactivate never touches superusers. A selection made of superusers only is rejected.
func (i impl) Deactivate(ids []string) (result apimodels.ActionResult, err error) {
	users, err := i.store.GetByIDs(ids)
	if err != nil {
		return apimodels.ActionResult{}, err
	}
	superusers, regular := []string{}, []dbmodels.User{}
	for _, user := range users {
		if user.IsSuperuser {
			superusers = append(superusers, user.Username)
		} else {
			regular = append(regular, user)
		}
	}
	if len(superusers) > 0 && len(regular) == 0 {
		return apimodels.ActionResult{}, models.NewValidationErrorf("ids",
			"superusers cannot be deactivated: %s", strings.Join(superusers, ", "))
	}
	affected := userIDs(regular)
	if err = i.store.SetActive(affected, false); err != nil {
		return apimodels.ActionResult{}, err
	}
	log.WithField("affected", len(affected)).Info("users deactivated")
	message := helpers.Plural(len(users), "Deactivated the selected user.", "Deactivated the selected users.")
	if len(superusers) > 0 {
		message = fmt.Sprintf("Deactivated %d of %d selected users. Superusers cannot be deactivated: %s.",
			len(regular), len(users), strings.Join(superusers, ", "))
	}
	return apimodels.ActionResult{
		Message:  message,
		Affected: affected,
	}, nil
}

func (i impl) checkUsername(username, excludeID string) error {
	taken, err := i.store.UsernameTaken(strings.TrimSpace(username), excludeID)
	if err != nil {
		return err
	}
	if taken {
		return models.NewValidationError("username", "a user with that username already exists")
	}
	return nil
}

func (i impl) notifyActivated(users []dbmodels.User) {
	if i.mailer == nil || !i.mailer.Configured() {
		return
	}
	for _, user := range users {
		if user.Email == "" {
			continue
		}
		message := fmt.Sprintf("Hello %s,\r\n\r\nyour account %q has been activated.", user.FullName(), user.Username)
		if err := i.mailer.SendEMail(user.Email, "Account activated", message); err != nil {
			log.WithError(err).
				WithField("rec_id", user.ID).
				Warn("activation notice not sent")
		}
	}
}

func userIDs(users []dbmodels.User) []string {
	ids := make([]string, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}
	return ids
}
