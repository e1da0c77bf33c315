package employeeprovider

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/config"
	"academic-records-backend/db"
	"academic-records-backend/lib/employee/store"
	"academic-records-backend/lib/utils/helpers"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	employeeapimodels "academic-records-backend/models/api/employee"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	Create(request employeeapimodels.EmployeeData) (id string, err error)
	Update(id string, request employeeapimodels.EmployeeData) error
	Get(id string) (item employeeapimodels.EmployeeView, err error)
	List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error)
	Delete(id string) error
	// Employments lists the employment data of the employee, optionally only the active ones.
	Employments(id string, activeOnly bool) (list []employeeapimodels.EmploymentView, err error)
	GetRec(id string) (*dbmodels.Employee, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewProvider(store.NewInstance(db.DB), config.Conf.Records.OrcidURLPrefix)
}

func NewProvider(employeeStore store.Provider, orcidPrefix string) Provider {
	instance := impl{
		store:       employeeStore,
		orcidPrefix: orcidPrefix,
		today:       helpers.Today,
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store       store.Provider
	orcidPrefix string
	today       func() time.Time
}

func (i impl) Create(request employeeapimodels.EmployeeData) (id string, err error) {
	rec := dbmodels.Employee{
		UserID:           request.UserID,
		StatusID:         request.StatusID,
		AcademicDegreeID: emptyToNil(request.AcademicDegreeID),
		InEvaluation:     request.InEvaluation,
		DisciplineID:     emptyToNil(request.DisciplineID),
		Orcid:            emptyToNil(request.Orcid),
	}
	if rec.InEvaluation == "" {
		rec.InEvaluation = models.Yes
	}
	if err = i.check(rec, ""); err != nil {
		return "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).
		WithField("user_id", rec.UserID).
		Info("employee created")
	return id, nil
}

func (i impl) Update(id string, request employeeapimodels.EmployeeData) error {
	rec, err := i.GetRec(id)
	if err != nil {
		return err
	}
	rec.UserID = request.UserID
	rec.StatusID = request.StatusID
	rec.AcademicDegreeID = emptyToNil(request.AcademicDegreeID)
	rec.DisciplineID = emptyToNil(request.DisciplineID)
	rec.Orcid = emptyToNil(request.Orcid)
	if request.InEvaluation != "" {
		rec.InEvaluation = request.InEvaluation
	}
	if err = i.check(*rec, id); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"user_id":            rec.UserID,
		"status_id":          rec.StatusID,
		"academic_degree_id": rec.AcademicDegreeID,
		"in_evaluation":      rec.InEvaluation,
		"discipline_id":      rec.DisciplineID,
		"orcid":              rec.Orcid,
	}
	if err = i.store.Update(id, updMap); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("employee updated")
	return nil
}

func (i impl) Get(id string) (item employeeapimodels.EmployeeView, err error) {
	rec, err := i.GetRec(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	return employeeapimodels.EmployeeConvert(*rec, i.today(), i.orcidPrefix, true), nil
}

func (i impl) GetRec(id string) (*dbmodels.Employee, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "employee not found")
	}
	return rec, nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error) {
	today := i.today()
	recList, rowCount, err := i.store.List(filter, today)
	if err != nil {
		return nil, 0, err
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, employeeapimodels.EmployeeConvert(rec, today, i.orcidPrefix, false))
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("employee deleted")
	return nil
}

func (i impl) Employments(id string, activeOnly bool) (list []employeeapimodels.EmploymentView, err error) {
	rec, err := i.GetRec(id)
	if err != nil {
		return nil, err
	}
	today := i.today()
	employments := rec.Employments
	if activeOnly {
		employments = rec.ActiveEmployments(today)
	}
	list = make([]employeeapimodels.EmploymentView, 0, len(employments))
	for _, employment := range employments {
		employment.Employee = rec
		list = append(list, employeeapimodels.EmploymentConvert(employment, today))
	}
	return list, nil
}

// check validates the record and its references; excludeID is the record being updated.
func (i impl) check(rec dbmodels.Employee, excludeID string) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	refs := []struct {
		field string
		model interface{}
		id    *string
	}{
		{"user_id", &dbmodels.User{}, &rec.UserID},
		{"status_id", &dbmodels.EmployeeStatus{}, &rec.StatusID},
		{"academic_degree_id", &dbmodels.AcademicDegree{}, rec.AcademicDegreeID},
		{"discipline_id", &dbmodels.Discipline{}, rec.DisciplineID},
	}
	for _, ref := range refs {
		if ref.id == nil {
			continue
		}
		exists, err := i.store.Exists(ref.model, *ref.id)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewValidationError(ref.field, "the selected record does not exist")
		}
	}
	taken, err := i.store.UserTaken(rec.UserID, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return models.NewValidationError("user_id", "this user already has an employee record")
	}
	if rec.HasOrcid() {
		taken, err = i.store.OrcidTaken(*rec.Orcid, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return models.NewValidationError("orcid", "employee with this ORCID already exists")
		}
	}
	return nil
}

func emptyToNil(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}
